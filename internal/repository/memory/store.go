// Package memory implements the document store as an in-process collection.
// It owns the canonical document copies; every read hands out a snapshot so
// one pipeline invocation observes a consistent state under concurrent
// writers.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/docdex/docdex/internal/domain"
	"github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/document/patch"
)

// Store is an in-memory document store. The natural iteration order is
// newest-first: Insert prepends.
type Store struct {
	mu   sync.RWMutex
	docs []document.Document
	byID map[string]int

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		byID: make(map[string]int),
		now:  time.Now,
	}
}

// WithClock overrides the modification timestamp source (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// WithDocuments bulk-loads documents in the given order.
func (s *Store) WithDocuments(docs []document.Document) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append([]document.Document(nil), docs...)
	s.reindex()
	return s
}

// Insert adds a document at the front of the collection.
func (s *Store) Insert(_ context.Context, doc document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[doc.ID()]; ok {
		return fmt.Errorf("insert %s: %w", doc.ID(), domain.ErrAlreadyExists)
	}

	s.docs = append([]document.Document{doc}, s.docs...)
	s.reindex()
	return nil
}

// Get returns the document with the given id.
func (s *Store) Get(_ context.Context, id string) (document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return document.Document{}, fmt.Errorf("get %s: %w", id, domain.ErrDocumentNotFound)
	}
	return s.docs[i], nil
}

// Update applies a partial update and refreshes the modification time.
func (s *Store) Update(_ context.Context, id string, p patch.Patch) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return document.Document{}, fmt.Errorf("update %s: %w", id, domain.ErrDocumentNotFound)
	}

	s.docs[i] = s.docs[i].WithPatch(p, s.now())
	return s.docs[i], nil
}

// Delete removes the document with the given id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("delete %s: %w", id, domain.ErrDocumentNotFound)
	}

	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	s.reindex()
	return nil
}

// Snapshot returns a copy of the collection in natural order. Callers may
// filter, sort, and slice it freely.
func (s *Store) Snapshot(_ context.Context) ([]document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]document.Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs), nil
}

// Ping reports store availability. Always healthy for the in-memory driver.
func (s *Store) Ping(_ context.Context) error { return nil }

// reindex rebuilds the id index. Caller must hold the write lock.
func (s *Store) reindex() {
	s.byID = make(map[string]int, len(s.docs))
	for i, d := range s.docs {
		s.byID[d.ID()] = i
	}
}
