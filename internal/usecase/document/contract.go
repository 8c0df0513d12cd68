package document

import (
	"context"

	domdoc "github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/document/patch"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Insert(ctx context.Context, doc domdoc.Document) error
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Update(ctx context.Context, id string, p patch.Patch) (domdoc.Document, error)
	Delete(ctx context.Context, id string) error
	Snapshot(ctx context.Context) ([]domdoc.Document, error)
	Count(ctx context.Context) (int, error)
}
