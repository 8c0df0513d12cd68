// Package search implements lexical document search: weighted substring
// scoring over name, tags, category, and author, plus facet aggregation
// and typeahead suggestions.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/docdex/docdex/internal/domain/document"
	domsearch "github.com/docdex/docdex/internal/domain/search"
)

// Field weights. Name matches dominate, each matching tag outranks the
// single-value fields, category and author count once each.
const (
	weightName     = 3
	weightTag      = 2
	weightCategory = 1
	weightAuthor   = 1
)

const maxSuggestions = 5

// Service scores documents against free-text queries.
type Service struct {
	store Snapshotter
}

// New creates a search service.
func New(store Snapshotter) *Service {
	return &Service{store: store}
}

// Search scores every stored document against the query and returns the
// hits ordered by score descending, plus facets aggregated over the
// hits. A blank query yields no results and empty facets, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]domsearch.Result, domsearch.FacetSet, error) {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []domsearch.Result{}, domsearch.EmptyFacetSet(), nil
	}

	docs, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, domsearch.FacetSet{}, fmt.Errorf("snapshot: %w", err)
	}

	results := make([]domsearch.Result, 0, len(docs))
	for i := range docs {
		score, highlights := scoreDocument(&docs[i], terms)
		if score == 0 {
			continue
		}
		results = append(results, domsearch.NewResult(docs[i], score, highlights))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score() != results[j].Score() {
			return results[i].Score() > results[j].Score()
		}
		a, b := results[i].Document(), results[j].Document()
		return a.ID() < b.ID()
	})

	return results, buildFacets(results), nil
}

// scoreDocument returns the weighted score and the highlights for one
// document, highlights in the fixed order name, tags, category, author.
// Each query term is matched by substring containment; name, category,
// and author count once per matching term, a tag counts once no matter
// how many terms hit it.
func scoreDocument(doc *document.Document, terms []string) (int, []string) {
	var score int
	var highlights []string

	if n := countMatches(doc.Name(), terms); n > 0 {
		score += weightName * n
		highlights = append(highlights, "Name: "+doc.Name())
	}

	var matched []string
	for _, tag := range doc.Tags() {
		if countMatches(tag, terms) > 0 {
			score += weightTag
			matched = append(matched, tag)
		}
	}
	if len(matched) > 0 {
		highlights = append(highlights, "Tags: "+strings.Join(matched, ", "))
	}

	if n := countMatches(doc.Category(), terms); n > 0 {
		score += weightCategory * n
		highlights = append(highlights, "Category: "+doc.Category())
	}

	if n := countMatches(doc.Author(), terms); n > 0 {
		score += weightAuthor * n
		highlights = append(highlights, "Author: "+doc.Author())
	}

	return score, highlights
}

func countMatches(value string, terms []string) int {
	lower := strings.ToLower(value)
	n := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			n++
		}
	}
	return n
}

// buildFacets aggregates facet counts over the hits. Documents without
// a project id do not contribute to the projects dimension.
func buildFacets(results []domsearch.Result) domsearch.FacetSet {
	categories := make(map[string]int)
	fileTypes := make(map[string]int)
	projects := make(map[string]int)

	for i := range results {
		doc := results[i].Document()
		categories[doc.Category()]++
		fileTypes[doc.Type()]++
		if doc.ProjectID() != "" {
			projects[doc.ProjectID()]++
		}
	}

	return domsearch.FacetSet{
		Categories: domsearch.CountsToFacets(categories),
		FileTypes:  domsearch.CountsToFacets(fileTypes),
		Projects:   domsearch.CountsToFacets(projects),
	}
}

// Suggest returns up to five distinct completion candidates drawn from
// document names, tags, and categories containing the query.
func (s *Service) Suggest(ctx context.Context, query string) ([]string, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}, nil
	}

	docs, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	seen := make(map[string]struct{})
	suggestions := []string{}

	add := func(candidate string) bool {
		if len(suggestions) >= maxSuggestions {
			return false
		}
		if !strings.Contains(strings.ToLower(candidate), q) {
			return true
		}
		if _, ok := seen[candidate]; ok {
			return true
		}
		seen[candidate] = struct{}{}
		suggestions = append(suggestions, candidate)
		return len(suggestions) < maxSuggestions
	}

	for i := range docs {
		if !add(docs[i].Name()) {
			break
		}
		more := true
		for _, tag := range docs[i].Tags() {
			if !add(tag) {
				more = false
				break
			}
		}
		if !more {
			break
		}
		if !add(docs[i].Category()) {
			break
		}
	}

	return suggestions, nil
}
