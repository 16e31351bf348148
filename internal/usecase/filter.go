package usecase

import (
	"strings"

	"github.com/shopsense/backend/internal/domain"
)

// ApplyFilter returns the order-preserving subsequence of products that
// satisfy every constraint present on the filter. Nil fields impose no
// constraint; a filter with all fields absent returns the input unchanged.
// There is no ranking: catalog order is display order.
func ApplyFilter(filter *domain.SearchFilter, products []domain.Product) []domain.Product {
	if filter == nil {
		filter = &domain.SearchFilter{}
	}

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(filter, &p) {
			result = append(result, p)
		}
	}
	return result
}

// matchesFilter reports whether a product passes every present constraint.
// Constraints combine with logical AND.
func matchesFilter(filter *domain.SearchFilter, p *domain.Product) bool {
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	// Category is exact, case-sensitive equality against the closed set.
	// A category the catalog does not use simply matches nothing.
	if filter.Category != nil && *filter.Category != "" && p.Category != *filter.Category {
		return false
	}
	if filter.MinRating != nil && p.Rating < *filter.MinRating {
		return false
	}
	if filter.Brand != nil && *filter.Brand != "" && !containsFold(p.Name, *filter.Brand) {
		return false
	}
	if filter.SearchTerms != nil && *filter.SearchTerms != "" &&
		!containsFold(p.Name, *filter.SearchTerms) && !containsFold(p.Description, *filter.SearchTerms) {
		return false
	}
	return true
}

// containsFold is the single case-insensitive substring check shared by
// AI-mode and plain-mode matching, so the two modes can never diverge
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
