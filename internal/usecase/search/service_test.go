package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docdex/docdex/internal/domain/document"
)

type mockStore struct {
	snapshotFn func(ctx context.Context) ([]document.Document, error)
}

func (m *mockStore) Snapshot(ctx context.Context) ([]document.Document, error) {
	if m.snapshotFn != nil {
		return m.snapshotFn(ctx)
	}
	return nil, nil
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 10, 0, 0, 0, time.UTC)
}

func fixtureDocs() []document.Document {
	return []document.Document{
		document.Reconstruct(document.Fields{
			ID: "1", Name: "Project Specifications.pdf", Type: "pdf", Size: 2048576,
			Category: "Specifications", Tags: []string{"project", "requirements"},
			UploadedAt: day(15), ModifiedAt: day(15),
			Author: "John Doe", ProjectID: "proj-1",
		}),
		document.Reconstruct(document.Fields{
			ID: "2", Name: "Architectural Drawings.dwg", Type: "dwg", Size: 5242880,
			Category: "Drawings", Tags: []string{"architecture", "blueprints"},
			UploadedAt: day(14), ModifiedAt: day(14),
			Author: "Jane Smith", ProjectID: "proj-1", Favorite: true,
		}),
		document.Reconstruct(document.Fields{
			ID: "3", Name: "Meeting Minutes.docx", Type: "docx", Size: 524288,
			Category: "Documentation", Tags: []string{"meeting", "notes"},
			UploadedAt: day(13), ModifiedAt: day(13),
			Author: "Mike Johnson", ProjectID: "proj-2",
		}),
	}
}

func newFixtureService() *Service {
	return New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			return fixtureDocs(), nil
		},
	})
}

func TestSearch_NameAndTagMatch(t *testing.T) {
	svc := newFixtureService()

	results, _, err := svc.Search(context.Background(), "architect")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.Document().ID() != "2" {
		t.Errorf("id = %q, want 2", r.Document().ID())
	}
	if r.Score() != weightName+weightTag {
		t.Errorf("score = %d, want %d", r.Score(), weightName+weightTag)
	}

	wantHighlights := []string{
		"Name: Architectural Drawings.dwg",
		"Tags: architecture",
	}
	if len(r.Highlights()) != len(wantHighlights) {
		t.Fatalf("highlights = %v", r.Highlights())
	}
	for i, want := range wantHighlights {
		if r.Highlights()[i] != want {
			t.Errorf("highlight[%d] = %q, want %q", i, r.Highlights()[i], want)
		}
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	svc := newFixtureService()

	results, _, err := svc.Search(context.Background(), "ARCHITECT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Document().ID() != "2" {
		t.Errorf("results = %d, want the same hit regardless of case", len(results))
	}
}

func TestSearch_MultiTermQuery(t *testing.T) {
	svc := newFixtureService()

	// "meeting" hits doc 3 on name (+3) and one tag (+2), "notes" on the
	// other tag (+2); each tag counts once even when several terms hit.
	results, _, err := svc.Search(context.Background(), "meeting notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	r := results[0]
	if r.Document().ID() != "3" {
		t.Errorf("id = %q, want 3", r.Document().ID())
	}
	if want := weightName + 2*weightTag; r.Score() != want {
		t.Errorf("score = %d, want %d", r.Score(), want)
	}
	if len(r.Highlights()) != 2 || r.Highlights()[1] != "Tags: meeting, notes" {
		t.Errorf("highlights = %v", r.Highlights())
	}
}

func TestSearch_ScoreOrdering(t *testing.T) {
	svc := newFixtureService()

	// "project" hits doc 1 on name (+3) and tag (+2), doc 3 not at all.
	results, _, err := svc.Search(context.Background(), "project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score() > results[i-1].Score() {
			t.Errorf("results not ordered by score: %d before %d",
				results[i-1].Score(), results[i].Score())
		}
	}
	if results[0].Document().ID() != "1" {
		t.Errorf("top hit = %q, want 1", results[0].Document().ID())
	}
}

func TestSearch_TieBreakByID(t *testing.T) {
	docs := []document.Document{
		document.Reconstruct(document.Fields{
			ID: "b", Name: "report.pdf", Type: "pdf",
			UploadedAt: day(2), ModifiedAt: day(2),
		}),
		document.Reconstruct(document.Fields{
			ID: "a", Name: "report.docx", Type: "docx",
			UploadedAt: day(1), ModifiedAt: day(1),
		}),
	}
	svc := New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			return docs, nil
		},
	})

	results, _, err := svc.Search(context.Background(), "report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Document().ID() != "a" || results[1].Document().ID() != "b" {
		t.Errorf("tie not broken by id: %q, %q",
			results[0].Document().ID(), results[1].Document().ID())
	}
}

func TestSearch_NoMatches(t *testing.T) {
	svc := newFixtureService()

	results, facets, err := svc.Search(context.Background(), "zzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(facets.Categories) != 0 || len(facets.FileTypes) != 0 || len(facets.Projects) != 0 {
		t.Errorf("facets not empty: %+v", facets)
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	svc := New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			t.Fatal("store must not be read for a blank query")
			return nil, nil
		},
	})

	for _, q := range []string{"", "   "} {
		results, facets, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results == nil || len(results) != 0 {
			t.Errorf("results = %v, want empty slice", results)
		}
		if facets.Categories == nil || facets.FileTypes == nil || facets.Projects == nil {
			t.Error("facet dimensions must be empty, not nil")
		}
	}
}

func TestSearch_FacetsOverHits(t *testing.T) {
	svc := newFixtureService()

	_, facets, err := svc.Search(context.Background(), "e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "e" appears in all three names, so all three docs survive.
	if len(facets.Categories) != 3 {
		t.Errorf("categories = %v, want 3 distinct", facets.Categories)
	}
	if len(facets.FileTypes) != 3 {
		t.Errorf("file types = %v, want 3 distinct", facets.FileTypes)
	}

	found := map[string]int{}
	for _, f := range facets.Projects {
		found[f.Name] = f.Count
	}
	if found["proj-1"] != 2 || found["proj-2"] != 1 {
		t.Errorf("projects = %v, want proj-1:2 proj-2:1", facets.Projects)
	}
}

func TestSearch_ProjectlessDocsSkipProjectFacet(t *testing.T) {
	docs := []document.Document{
		document.Reconstruct(document.Fields{
			ID: "1", Name: "orphan.pdf", Type: "pdf",
			UploadedAt: day(1), ModifiedAt: day(1),
		}),
	}
	svc := New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			return docs, nil
		},
	})

	_, facets, err := svc.Search(context.Background(), "orphan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(facets.Projects) != 0 {
		t.Errorf("projects = %v, want empty", facets.Projects)
	}
}

func TestSearch_StoreError(t *testing.T) {
	wantErr := errors.New("store down")
	svc := New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			return nil, wantErr
		},
	})

	if _, _, err := svc.Search(context.Background(), "x"); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want wrapped store error", err)
	}
}

func TestSuggest(t *testing.T) {
	svc := newFixtureService()

	got, err := svc.Suggest(context.Background(), "doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]bool{
		"Meeting Minutes.docx": true,
		"Documentation":        true,
	}
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v", got)
	}
	for _, s := range got {
		if !want[s] {
			t.Errorf("unexpected suggestion %q", s)
		}
	}
}

func TestSuggest_Dedup(t *testing.T) {
	docs := []document.Document{
		document.Reconstruct(document.Fields{
			ID: "1", Name: "budget.xlsx", Type: "xlsx", Tags: []string{"budget"},
			Category: "Finance", UploadedAt: day(1), ModifiedAt: day(1),
		}),
		document.Reconstruct(document.Fields{
			ID: "2", Name: "budget.xlsx", Type: "xlsx", Tags: []string{"budget"},
			Category: "Finance", UploadedAt: day(2), ModifiedAt: day(2),
		}),
	}
	svc := New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			return docs, nil
		},
	})

	got, err := svc.Suggest(context.Background(), "budget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("suggestions = %v, want deduplicated [budget.xlsx budget]", got)
	}
}

func TestSuggest_Cap(t *testing.T) {
	docs := make([]document.Document, 0, 10)
	names := []string{"plan-a.pdf", "plan-b.pdf", "plan-c.pdf", "plan-d.pdf", "plan-e.pdf", "plan-f.pdf"}
	for i, name := range names {
		docs = append(docs, document.Reconstruct(document.Fields{
			ID: name, Name: name, Type: "pdf",
			UploadedAt: day(i + 1), ModifiedAt: day(i + 1),
		}))
	}
	svc := New(&mockStore{
		snapshotFn: func(context.Context) ([]document.Document, error) {
			return docs, nil
		},
	})

	got, err := svc.Suggest(context.Background(), "plan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != maxSuggestions {
		t.Errorf("got %d suggestions, want %d", len(got), maxSuggestions)
	}
}

func TestSuggest_Blank(t *testing.T) {
	svc := newFixtureService()

	got, err := svc.Suggest(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("suggestions = %v, want empty slice", got)
	}
}
