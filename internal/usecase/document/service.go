// Package document handles document lifecycle: upload, retrieval,
// partial update, deletion, and catalog listings of the distinct
// categories, authors, and tags in the store.
package document

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	domdoc "github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/document/patch"
)

// Fallbacks applied when an upload omits the optional fields.
const (
	defaultCategory = "Uncategorized"
	defaultAuthor   = "Current User"
)

// CreateRequest carries the upload parameters. Only Name and Size are
// required; the rest default or stay empty.
type CreateRequest struct {
	Name      string
	Size      int64
	Category  string
	Tags      []string
	Author    string
	ProjectID string
	URL       string
	Thumbnail string

	// OnProgress, when set, receives upload progress as a percentage.
	// It is called synchronously and must not block.
	OnProgress func(pct int)
}

// Service handles document CRUD and catalog queries.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock overrides the upload timestamp source (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator overrides the document id source (tests).
func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// Create stores a new document. The id is generated, the file type is
// derived from the name, and missing category and author fall back to
// their defaults.
func (s *Service) Create(ctx context.Context, req CreateRequest) (domdoc.Document, error) {
	if req.OnProgress != nil {
		req.OnProgress(0)
	}

	category := req.Category
	if category == "" {
		category = defaultCategory
	}
	author := req.Author
	if author == "" {
		author = defaultAuthor
	}

	doc, err := domdoc.New(s.newID(), req.Name, req.Size, s.now(), domdoc.Attrs{
		Category:  category,
		Tags:      req.Tags,
		Author:    author,
		ProjectID: req.ProjectID,
		URL:       req.URL,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		return domdoc.Document{}, err
	}

	if err := s.repo.Insert(ctx, doc); err != nil {
		return domdoc.Document{}, fmt.Errorf("insert document: %w", err)
	}

	if req.OnProgress != nil {
		req.OnProgress(100)
	}
	return doc, nil
}

// Get retrieves a document by id.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Update applies a partial update and returns the updated document.
func (s *Service) Update(ctx context.Context, id string, p patch.Patch) (domdoc.Document, error) {
	doc, err := s.repo.Update(ctx, id, p)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

// Delete removes a document by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// Count returns the number of stored documents.
func (s *Service) Count(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return count, nil
}

// Categories returns the distinct document categories, sorted.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(d *domdoc.Document) []string {
		return []string{d.Category()}
	})
}

// Authors returns the distinct document authors, sorted.
func (s *Service) Authors(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(d *domdoc.Document) []string {
		return []string{d.Author()}
	})
}

// Tags returns the distinct document tags, sorted.
func (s *Service) Tags(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, func(d *domdoc.Document) []string {
		return d.Tags()
	})
}

func (s *Service) distinct(
	ctx context.Context, extract func(*domdoc.Document) []string,
) ([]string, error) {
	docs, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	seen := make(map[string]struct{})
	out := []string{}
	for i := range docs {
		for _, v := range extract(&docs[i]) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}
