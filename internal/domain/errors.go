package domain

import "errors"

var (
	// ErrCompletionFailure is returned when the completion service request fails
	ErrCompletionFailure = errors.New("completion service request failed")

	// ErrNoFilterFound is returned when no JSON filter object can be located in a completion response
	ErrNoFilterFound = errors.New("no filter object found in completion response")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogLoad is returned when the catalog file cannot be loaded
	ErrCatalogLoad = errors.New("catalog load failed")

	// ErrStaleResult is returned when a search completes after a newer search has been issued
	ErrStaleResult = errors.New("search result superseded by a newer query")
)
