package listing

import (
	"context"

	"github.com/docdex/docdex/internal/domain/document"
)

// Snapshotter reads the full document collection in natural order.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]document.Document, error)
}
