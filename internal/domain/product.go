package domain

// Product represents a single catalog entry. Products are loaded once at
// startup and never mutated afterwards.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image,omitempty"`
}

// SearchFilter holds the structured constraints derived from a search.
// Every field is optional; a nil field imposes no constraint on that
// dimension. The zero value (all nil) matches everything and is the
// defined fallback when query interpretation fails.
type SearchFilter struct {
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	MinRating   *float64 `json:"minRating,omitempty"`
	SearchTerms *string  `json:"searchTerms,omitempty"`
}

// IsEmpty reports whether the filter imposes no constraints at all.
func (f *SearchFilter) IsEmpty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.Category == nil &&
		f.Brand == nil && f.MinRating == nil && f.SearchTerms == nil
}

// SearchRequest represents one user-initiated search.
// Category/MinPrice/MaxPrice carry the UI widget selections used when
// AIMode is off; in AI mode the filter comes from the interpreter instead.
type SearchRequest struct {
	Query    string   `json:"query"`
	AIMode   bool     `json:"aiMode"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// SearchResult is the outcome of a search: the order-preserving subsequence
// of the catalog that passed the filter, plus the resolved filter so the UI
// can explain which constraints were applied.
type SearchResult struct {
	Products []Product    `json:"products"`
	Filter   SearchFilter `json:"filter"`
	Total    int          `json:"total"`
	Sequence uint64       `json:"-"`
}
