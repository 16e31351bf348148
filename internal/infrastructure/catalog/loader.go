package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/shopsense/backend/internal/domain"
)

// Catalog is the static, read-only product collection loaded at startup.
// It preserves the order of the source file; that order is the display
// order for all search results.
type Catalog struct {
	products   []domain.Product
	categories []string
}

// fallbackProducts is the minimal built-in dataset used when the catalog
// file cannot be loaded. The server never refuses to start over catalog
// problems; it serves this instead.
var fallbackProducts = []domain.Product{
	{
		ID:          "fallback-1",
		Name:        "Classic White Sneakers",
		Price:       59.99,
		Category:    "footwear",
		Description: "All-purpose white sneakers with a cushioned sole.",
		Rating:      4.2,
	},
}

// Load reads the product catalog from the JSON file at path.
// On any failure it logs the problem and returns a catalog backed by the
// built-in fallback dataset together with the load error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[CATALOG] Failed to read %s: %v - using built-in fallback", path, err)
		return New(fallbackProducts), fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Printf("[CATALOG] Failed to parse %s: %v - using built-in fallback", path, err)
		return New(fallbackProducts), fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}

	if len(products) == 0 {
		log.Printf("[CATALOG] %s contains no products - using built-in fallback", path)
		return New(fallbackProducts), fmt.Errorf("%w: empty product list", domain.ErrCatalogLoad)
	}

	log.Printf("[CATALOG] Loaded %d products from %s", len(products), path)
	return New(products), nil
}

// New creates a catalog from an already-assembled product list.
func New(products []domain.Product) *Catalog {
	return &Catalog{
		products:   products,
		categories: distinctCategories(products),
	}
}

// Products returns the ordered product list.
// Callers must not modify the returned slice.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// distinctCategories collects categories in first-seen order
func distinctCategories(products []domain.Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
