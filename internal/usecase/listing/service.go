// Package listing runs the document query pipeline: filter, sort,
// paginate, in that order, over a snapshot of the store.
package listing

import (
	"context"
	"fmt"
	"sort"

	"github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/listing/filter"
	"github.com/docdex/docdex/internal/domain/listing/page"
	"github.com/docdex/docdex/internal/domain/listing/sortkey"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Request carries the listing parameters. Zero values mean defaults:
// sort by upload date descending, first page, default page size.
type Request struct {
	Filter    filter.Spec
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Response is one page of the filtered, sorted collection. TotalCount
// is the number of documents surviving the filter, not the page length.
type Response struct {
	Documents  []document.Document
	TotalCount int
}

// Service executes listing queries against the document store.
type Service struct {
	store           Snapshotter
	defaultPageSize int
	maxPageSize     int
}

// New creates a listing service.
func New(store Snapshotter) *Service {
	return &Service{
		store:           store,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// WithPagination overrides the default and maximum page sizes.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// List applies the filter, sorts the survivors, and returns the
// requested page. Filtering happens before counting, so TotalCount
// drives pagination controls for the filtered set.
func (s *Service) List(ctx context.Context, req Request) (Response, error) {
	key, err := parseSortKey(req.SortBy, req.SortOrder)
	if err != nil {
		return Response{}, err
	}

	docs, err := s.store.Snapshot(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("snapshot: %w", err)
	}

	if !req.Filter.IsEmpty() {
		kept := docs[:0]
		for _, d := range docs {
			if req.Filter.Matches(d) {
				kept = append(kept, d)
			}
		}
		docs = kept
	}

	sort.SliceStable(docs, func(i, j int) bool {
		return key.Less(docs[i], docs[j])
	})

	total := len(docs)
	pageReq := page.Request{Page: req.Page, Size: req.PageSize}.
		Normalize(s.defaultPageSize, s.maxPageSize)
	paged, _ := page.Paginate(docs, pageReq)

	return Response{Documents: paged, TotalCount: total}, nil
}

func parseSortKey(by, order string) (sortkey.Key, error) {
	field, err := sortkey.ParseField(by)
	if err != nil {
		return sortkey.Key{}, err
	}
	ord, err := sortkey.ParseOrder(order)
	if err != nil {
		return sortkey.Key{}, err
	}
	return sortkey.Key{Field: field, Order: ord}, nil
}
