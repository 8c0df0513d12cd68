// Package redisstore implements the document store on Redis hashes: one
// hash per document plus a list of ids preserving the natural
// (newest-first) order.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/docdex/docdex/internal/db"
	"github.com/docdex/docdex/internal/domain"
	"github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/document/patch"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	LPush(ctx context.Context, key string, values ...string) error
	LRem(ctx context.Context, key, value string) error
	LRange(ctx context.Context, key string) ([]string, error)
	Ping(ctx context.Context) error
}

// Store implements the document store over Redis.
type Store struct {
	db        store
	keyPrefix string
	now       func() time.Time
}

// New creates a Redis-backed document store.
func New(db store, keyPrefix string) *Store {
	return &Store{db: db, keyPrefix: keyPrefix, now: time.Now}
}

// WithClock overrides the modification timestamp source (tests).
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Insert adds a document at the front of the collection.
func (s *Store) Insert(ctx context.Context, doc document.Document) error {
	key := s.docKey(doc.ID())

	exists, err := s.db.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return fmt.Errorf("insert %s: %w", doc.ID(), domain.ErrAlreadyExists)
	}

	if err := s.db.HSet(ctx, key, buildHashFields(doc)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	if err := s.db.LPush(ctx, s.listKey(), doc.ID()); err != nil {
		return fmt.Errorf("lpush %s: %w", doc.ID(), err)
	}
	return nil
}

// Get returns the document with the given id.
func (s *Store) Get(ctx context.Context, id string) (document.Document, error) {
	key := s.docKey(id)
	m, err := s.db.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return document.Document{}, fmt.Errorf("get %s: %w", id, domain.ErrDocumentNotFound)
		}
		return document.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return parseHashFields(id, m), nil
}

// Update applies a partial update and refreshes the modification time.
// Read-modify-write; last writer wins, matching the in-memory driver.
func (s *Store) Update(ctx context.Context, id string, p patch.Patch) (document.Document, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return document.Document{}, err
	}

	updated := doc.WithPatch(p, s.now())
	if err := s.db.HSet(ctx, s.docKey(id), buildHashFields(updated)); err != nil {
		return document.Document{}, fmt.Errorf("hset %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes the document with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	key := s.docKey(id)

	exists, err := s.db.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("delete %s: %w", id, domain.ErrDocumentNotFound)
	}

	if err := s.db.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := s.db.LRem(ctx, s.listKey(), id); err != nil {
		return fmt.Errorf("lrem %s: %w", id, err)
	}
	return nil
}

// Snapshot returns all documents in natural order. Ids whose hash is gone
// (a delete raced the list read) are skipped.
func (s *Store) Snapshot(ctx context.Context) ([]document.Document, error) {
	ids, err := s.db.LRange(ctx, s.listKey())
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", s.listKey(), err)
	}

	docs := make([]document.Document, 0, len(ids))
	for _, id := range ids {
		m, err := s.db.HGetAll(ctx, s.docKey(id))
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue
			}
			return nil, fmt.Errorf("hgetall %s: %w", s.docKey(id), err)
		}
		docs = append(docs, parseHashFields(id, m))
	}
	return docs, nil
}

// Count returns the number of stored documents.
func (s *Store) Count(ctx context.Context) (int, error) {
	ids, err := s.db.LRange(ctx, s.listKey())
	if err != nil {
		return 0, fmt.Errorf("lrange %s: %w", s.listKey(), err)
	}
	return len(ids), nil
}

// Ping reports store availability.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) docKey(id string) string {
	return s.keyPrefix + "doc:" + id
}

func (s *Store) listKey() string {
	return s.keyPrefix + "docs"
}
