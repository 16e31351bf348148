package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/shopsense/backend/internal/domain"
)

// systemPromptTemplate instructs the model to answer with a single JSON
// object and nothing else. %s is the allowed category list.
const systemPromptTemplate = `You are a product search assistant for an e-commerce catalog.
Translate the user's shopping query into a single JSON object with exactly these keys:

{
  "minPrice": number or null,
  "maxPrice": number or null,
  "category": string or null,
  "brand": string or null,
  "minRating": number or null,
  "searchTerms": string or null
}

Rules:
1. Respond with ONLY the JSON object. No prose, no markdown, no explanations.
2. "category" must be one of: %s. If none applies, use null.
3. Use null for any constraint the query does not mention.
4. Phrases like "good reviews" or "highly rated" mean "minRating": 4.0.
5. "minPrice"/"maxPrice" are numbers, not strings. "under $100" means "maxPrice": 100.
6. "searchTerms" holds remaining descriptive words useful for text matching (e.g. "running shoes").`

// Interpreter translates free-text queries into SearchFilter objects by
// delegating to an external completion service. It never fails: any error
// on the way to a parsed filter degrades to the all-absent filter, so a
// search is never blocked by the model.
type Interpreter struct {
	client             domain.CompletionClient
	systemPrompt       string
	enableDebugLogging bool
}

// NewInterpreter creates an interpreter constrained to the given closed
// category set (normally the catalog's distinct categories).
func NewInterpreter(client domain.CompletionClient, categories []string, enableDebugLogging bool) *Interpreter {
	quoted := make([]string, len(categories))
	for i, c := range categories {
		quoted[i] = fmt.Sprintf("%q", c)
	}

	return &Interpreter{
		client:             client,
		systemPrompt:       fmt.Sprintf(systemPromptTemplate, strings.Join(quoted, ", ")),
		enableDebugLogging: enableDebugLogging,
	}
}

// Interpret translates a query into a SearchFilter. Fails open: on any
// completion or parse failure the returned filter has no constraints and
// the caller proceeds with an unfiltered search.
func (i *Interpreter) Interpret(ctx context.Context, query string) *domain.SearchFilter {
	if i.client == nil {
		log.Printf("[INTERPRET] No completion client configured - searching without constraints")
		return &domain.SearchFilter{}
	}

	response, err := i.client.Complete(ctx, i.systemPrompt, query)
	if err != nil {
		log.Printf("[INTERPRET] Completion failed for %q: %v - searching without constraints", query, err)
		return &domain.SearchFilter{}
	}

	filter, err := parseFilterResponse(response)
	if err != nil {
		log.Printf("[INTERPRET] Unparseable response for %q: %v - searching without constraints", query, err)
		return &domain.SearchFilter{}
	}

	if i.enableDebugLogging {
		log.Printf("[INTERPRET] Query %q -> filter %s", query, describeFilter(filter))
	}

	return filter
}

// parseFilterResponse extracts the first well-formed JSON object from the
// response text and decodes it into a SearchFilter. Missing keys stay nil;
// unknown keys are ignored.
func parseFilterResponse(response string) (*domain.SearchFilter, error) {
	raw, err := extractJSONObject(response)
	if err != nil {
		return nil, err
	}

	var filter domain.SearchFilter
	if err := json.Unmarshal([]byte(raw), &filter); err != nil {
		return nil, fmt.Errorf("decoding filter object: %w", err)
	}

	return &filter, nil
}

// extractJSONObject locates the first balanced JSON object in text,
// tolerating prose before and after it. Braces inside JSON strings are
// skipped so values like "a {b}" do not unbalance the scan.
func extractJSONObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", domain.ErrNoFilterFound
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", domain.ErrNoFilterFound
}

// describeFilter renders a filter for debug logs
func describeFilter(f *domain.SearchFilter) string {
	if f.IsEmpty() {
		return "{unconstrained}"
	}
	var parts []string
	if f.MinPrice != nil {
		parts = append(parts, fmt.Sprintf("minPrice=%.2f", *f.MinPrice))
	}
	if f.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("maxPrice=%.2f", *f.MaxPrice))
	}
	if f.Category != nil {
		parts = append(parts, fmt.Sprintf("category=%s", *f.Category))
	}
	if f.Brand != nil {
		parts = append(parts, fmt.Sprintf("brand=%s", *f.Brand))
	}
	if f.MinRating != nil {
		parts = append(parts, fmt.Sprintf("minRating=%.1f", *f.MinRating))
	}
	if f.SearchTerms != nil {
		parts = append(parts, fmt.Sprintf("searchTerms=%q", *f.SearchTerms))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
