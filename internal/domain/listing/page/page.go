// Package page slices ordered document sequences into fixed-size pages.
package page

import "github.com/docdex/docdex/internal/domain/document"

// Request is a 1-based page selection.
type Request struct {
	Page int
	Size int
}

// Normalize clamps the request to valid minimums and the given bounds.
// Non-positive pages become 1; a non-positive size takes the default.
func (r Request) Normalize(defaultSize, maxSize int) Request {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = defaultSize
	}
	if maxSize > 0 && r.Size > maxSize {
		r.Size = maxSize
	}
	return r
}

// Paginate returns the requested page of docs plus the pre-pagination
// total. Pages beyond the end yield an empty slice, not an error.
func Paginate(docs []document.Document, r Request) ([]document.Document, int) {
	total := len(docs)

	start := (r.Page - 1) * r.Size
	if start >= total {
		return []document.Document{}, total
	}
	end := start + r.Size
	if end > total {
		end = total
	}
	return docs[start:end], total
}
