package usecase

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/shopsense/backend/internal/domain"
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	EnableDebugLogging bool
}

// SearchService is the single search entry point. In AI mode the query is
// interpreted by the completion service into a structured filter; in plain
// mode the filter is built locally from the widget inputs and the raw query
// text. Both paths go through the same evaluator.
//
// Concurrent searches are resolved last-issued-wins: every search gets a
// monotonically increasing sequence number and a completed search publishes
// its result only while it is still the newest issued, so a slow completion
// can never overwrite the result of a newer query.
type SearchService struct {
	catalog     domain.CatalogSource
	interpreter *Interpreter

	issued atomic.Uint64

	mu     sync.Mutex
	latest *domain.SearchResult
}

// NewSearchService creates a search service with its dependencies
func NewSearchService(catalog domain.CatalogSource, client domain.CompletionClient, config SearchServiceConfig) *SearchService {
	return &SearchService{
		catalog:     catalog,
		interpreter: NewInterpreter(client, catalog.Categories(), config.EnableDebugLogging),
	}
}

// Search resolves the filter for the request, applies it to the catalog,
// and publishes the result if no newer search has been issued meanwhile.
// An empty product list is a valid result, never an error; the only error
// cases are a nil request and supersession by a newer search.
func (s *SearchService) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}

	seq := s.issued.Add(1)

	var filter *domain.SearchFilter
	if req.AIMode {
		filter = s.interpreter.Interpret(ctx, req.Query)
	} else {
		filter = buildPlainFilter(req)
	}

	result := &domain.SearchResult{
		Products: ApplyFilter(filter, s.catalog.Products()),
		Filter:   *filter,
		Sequence: seq,
	}
	result.Total = len(result.Products)

	if !s.publish(result) {
		log.Printf("[SEARCH] Discarding stale result for query %q (seq %d, latest issued %d)",
			req.Query, seq, s.issued.Load())
		return result, domain.ErrStaleResult
	}

	return result, nil
}

// Latest returns the most recently published result, or nil before the
// first search completes.
func (s *SearchService) Latest() *domain.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// publish stores the result as current unless a newer search has been
// issued or an equally-new result is already stored. Reports whether the
// result was accepted.
func (s *SearchService) publish(result *domain.SearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.Sequence != s.issued.Load() {
		return false
	}
	if s.latest != nil && s.latest.Sequence >= result.Sequence {
		return false
	}
	s.latest = result
	return true
}

// buildPlainFilter assembles the non-AI filter from the UI widget inputs
// plus a raw substring match of the query against name/description. This is
// a strict subset of the AI-mode predicate set and reuses the same matcher.
func buildPlainFilter(req *domain.SearchRequest) *domain.SearchFilter {
	filter := &domain.SearchFilter{
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	}
	if req.Category != "" {
		category := req.Category
		filter.Category = &category
	}
	if req.Query != "" {
		terms := req.Query
		filter.SearchTerms = &terms
	}
	return filter
}
