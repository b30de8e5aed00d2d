// Package search defines the external web-search collaborator consumed
// by the reputation resolver.
package search

import "context"

// Result is one search hit.
type Result struct {
	Link string `json:"link"`
	Body string `json:"body"`
}

// Searcher performs a web search. Implementations may be unavailable or
// slow; callers bound them with a context deadline and degrade to static
// fallback data on any error.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
