// Package search defines the search result and facet value objects.
package search

import "github.com/docdex/docdex/internal/domain/document"

// Result is a single search hit: a document, its relevance score, and
// human-readable highlights naming the fields that matched.
type Result struct {
	doc        document.Document
	score      int
	highlights []string
}

// NewResult creates a search result.
func NewResult(doc document.Document, score int, highlights []string) Result {
	return Result{doc: doc, score: score, highlights: highlights}
}

// Document returns the matched document.
func (r *Result) Document() document.Document { return r.doc }

// Score returns the relevance score. Results with score 0 never exist.
func (r *Result) Score() int { return r.score }

// Highlights returns the matched-field descriptions in the fixed order
// name, tags, category, author.
func (r *Result) Highlights() []string { return r.highlights }
