package domain

import "context"

// CompletionClient defines the interface for the external language-model
// completion service used to translate queries into filters.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// CatalogSource defines the interface for the static product catalog.
// Implementations load once at startup and are read-only afterwards.
type CatalogSource interface {
	Products() []Product
	Categories() []string
}
