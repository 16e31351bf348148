package usecase

import (
	"testing"

	"github.com/shopsense/backend/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Apple Watch", Price: 399, Category: "electronics", Description: "Smartwatch with fitness tracking", Rating: 4.7},
		{ID: "2", Name: "Nimbus Running Shoes", Price: 89.99, Category: "footwear", Description: "Lightweight running shoes", Rating: 4.6},
		{ID: "3", Name: "TrailMaster Boots", Price: 129.5, Category: "footwear", Description: "Waterproof hiking boots", Rating: 4.5},
		{ID: "4", Name: "Cotton T-Shirt", Price: 19.99, Category: "clothing", Description: "Soft crew-neck t-shirt", Rating: 4.1},
	}
}

func TestApplyFilter(t *testing.T) {
	products := testProducts()

	t.Run("empty filter returns input unchanged", func(t *testing.T) {
		result := ApplyFilter(&domain.SearchFilter{}, products)
		if len(result) != len(products) {
			t.Fatalf("len(result) = %d, want %d", len(result), len(products))
		}
		for i := range products {
			if result[i].ID != products[i].ID {
				t.Errorf("result[%d].ID = %s, want %s (order must be preserved)", i, result[i].ID, products[i].ID)
			}
		}
	})

	t.Run("nil filter matches everything", func(t *testing.T) {
		result := ApplyFilter(nil, products)
		if len(result) != len(products) {
			t.Errorf("len(result) = %d, want %d", len(result), len(products))
		}
	})

	t.Run("price boundaries are inclusive", func(t *testing.T) {
		filter := &domain.SearchFilter{
			MinPrice: floatPtr(89.99),
			MaxPrice: floatPtr(89.99),
		}
		result := ApplyFilter(filter, products)
		if len(result) != 1 {
			t.Fatalf("len(result) = %d, want 1", len(result))
		}
		if result[0].ID != "2" {
			t.Errorf("result[0].ID = %s, want 2", result[0].ID)
		}
	})

	t.Run("max price filters out more expensive products", func(t *testing.T) {
		result := ApplyFilter(&domain.SearchFilter{MaxPrice: floatPtr(100)}, products)
		for _, p := range result {
			if p.Price > 100 {
				t.Errorf("product %s has price %.2f, want <= 100", p.ID, p.Price)
			}
		}
		if len(result) != 2 {
			t.Errorf("len(result) = %d, want 2", len(result))
		}
	})

	t.Run("category equality is case sensitive", func(t *testing.T) {
		result := ApplyFilter(&domain.SearchFilter{Category: strPtr("footwear")}, products)
		if len(result) != 2 {
			t.Errorf("len(result) = %d, want 2", len(result))
		}

		result = ApplyFilter(&domain.SearchFilter{Category: strPtr("Footwear")}, products)
		if len(result) != 0 {
			t.Errorf("len(result) = %d, want 0 for mismatched case", len(result))
		}
	})

	t.Run("unknown category combined with any other constraint yields empty result", func(t *testing.T) {
		filter := &domain.SearchFilter{
			Category: strPtr("groceries"),
			MaxPrice: floatPtr(1000),
		}
		result := ApplyFilter(filter, products)
		if len(result) != 0 {
			t.Errorf("len(result) = %d, want 0", len(result))
		}
	})

	t.Run("minimum rating boundary is inclusive", func(t *testing.T) {
		result := ApplyFilter(&domain.SearchFilter{MinRating: floatPtr(4.5)}, products)
		if len(result) != 3 {
			t.Errorf("len(result) = %d, want 3", len(result))
		}
	})

	t.Run("brand match is case insensitive", func(t *testing.T) {
		for _, brand := range []string{"apple", "APPLE", "Apple"} {
			result := ApplyFilter(&domain.SearchFilter{Brand: strPtr(brand)}, products)
			if len(result) != 1 || result[0].ID != "1" {
				t.Errorf("brand %q matched %d products, want exactly Apple Watch", brand, len(result))
			}
		}
	})

	t.Run("search terms match name or description", func(t *testing.T) {
		// "running" appears in product 2's name and description only
		result := ApplyFilter(&domain.SearchFilter{SearchTerms: strPtr("RUNNING")}, products)
		if len(result) != 1 || result[0].ID != "2" {
			t.Fatalf("search terms matched %v, want only product 2", ids(result))
		}

		// "waterproof" appears only in product 3's description
		result = ApplyFilter(&domain.SearchFilter{SearchTerms: strPtr("waterproof")}, products)
		if len(result) != 1 || result[0].ID != "3" {
			t.Errorf("search terms matched %v, want only product 3", ids(result))
		}
	})

	t.Run("empty string constraints impose no constraint", func(t *testing.T) {
		filter := &domain.SearchFilter{
			Category:    strPtr(""),
			Brand:       strPtr(""),
			SearchTerms: strPtr(""),
		}
		result := ApplyFilter(filter, products)
		if len(result) != len(products) {
			t.Errorf("len(result) = %d, want %d", len(result), len(products))
		}
	})

	t.Run("constraints combine with AND", func(t *testing.T) {
		filter := &domain.SearchFilter{
			Category:  strPtr("footwear"),
			MaxPrice:  floatPtr(100),
			MinRating: floatPtr(4.0),
		}
		result := ApplyFilter(filter, products)
		if len(result) != 1 || result[0].ID != "2" {
			t.Errorf("combined filter matched %v, want only product 2", ids(result))
		}
	})

	t.Run("no match is an empty slice, not nil panic", func(t *testing.T) {
		result := ApplyFilter(&domain.SearchFilter{MinPrice: floatPtr(10000)}, products)
		if result == nil {
			t.Fatal("result is nil, want empty slice")
		}
		if len(result) != 0 {
			t.Errorf("len(result) = %d, want 0", len(result))
		}
	})
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
