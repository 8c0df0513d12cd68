package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docdex/docdex/internal/domain"
	"github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/document/patch"
)

func seeded() *Store {
	return New().WithDocuments(DemoDocuments())
}

func TestInsert_PrependsAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := seeded()

	doc, err := document.New("4", "new.txt", 10, time.Now(), document.Attrs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Insert(ctx, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap) != 4 || snap[0].ID() != "4" {
		t.Errorf("insert must prepend; head id = %q", snap[0].ID())
	}

	if err := s.Insert(ctx, doc); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("duplicate insert error = %v, want ErrAlreadyExists", err)
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := seeded()

	doc, err := s.Get(ctx, "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name() != "Architectural Drawings.dwg" || !doc.Favorite() {
		t.Errorf("got wrong document: %q", doc.Name())
	}

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("error = %v, want ErrDocumentNotFound", err)
	}
}

func TestUpdate_RefreshesModifiedAt(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	s := seeded().WithClock(func() time.Time { return frozen })

	cat := "Archive"
	p, err := patch.New(patch.Attrs{Category: &cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := s.Update(ctx, "3", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Category() != "Archive" {
		t.Errorf("category = %q, want Archive", updated.Category())
	}
	if !updated.ModifiedAt().Equal(frozen) {
		t.Errorf("modifiedAt = %v, want %v", updated.ModifiedAt(), frozen)
	}
	if !updated.UploadedAt().Equal(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)) {
		t.Error("uploadedAt must not change on update")
	}

	// Mutation is reflected in subsequent reads.
	got, err := s.Get(ctx, "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Category() != "Archive" {
		t.Error("update not visible to Get")
	}

	if _, err := s.Update(ctx, "missing", p); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("error = %v, want ErrDocumentNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := seeded()

	if err := s.Delete(ctx, "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get(ctx, "2"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Error("deleted document still readable")
	}
	if n, _ := s.Count(ctx); n != 2 {
		t.Errorf("count = %d, want 2", n)
	}

	if err := s.Delete(ctx, "2"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("second delete error = %v, want ErrDocumentNotFound", err)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	ctx := context.Background()
	s := seeded()

	snap, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap[0] = document.Reconstruct(document.Fields{ID: "clobbered"})

	got, err := s.Get(ctx, "1")
	if err != nil || got.ID() != "1" {
		t.Error("mutating a snapshot must not affect the store")
	}
}
