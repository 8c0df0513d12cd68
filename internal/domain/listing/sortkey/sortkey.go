// Package sortkey defines the closed set of sortable document fields and
// the type-aware comparator over them.
package sortkey

import (
	"fmt"
	"strings"
	"time"

	"github.com/docdex/docdex/internal/domain"
	"github.com/docdex/docdex/internal/domain/document"
)

// Field names a sortable document attribute.
type Field string

const (
	FieldName         Field = "name"
	FieldType         Field = "type"
	FieldSize         Field = "size"
	FieldCategory     Field = "category"
	FieldUploadDate   Field = "uploadDate"
	FieldLastModified Field = "lastModified"
	FieldAuthor       Field = "author"
)

// DefaultField orders listings when the caller does not ask otherwise.
const DefaultField = FieldUploadDate

// ParseField validates a sort field name. Unknown names are rejected
// rather than defaulted so caller bugs surface early.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldName, FieldType, FieldSize, FieldCategory,
		FieldUploadDate, FieldLastModified, FieldAuthor:
		return Field(s), nil
	case "":
		return DefaultField, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSortField, s)
	}
}

// Order is the sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder validates a sort direction, defaulting to descending.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case Asc, Desc:
		return Order(s), nil
	case "":
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: sort order %q", domain.ErrInvalidParameter, s)
	}
}

// Key pairs a sortable field with a direction.
type Key struct {
	Field Field
	Order Order
}

// Default sorts by upload date, newest first.
func Default() Key {
	return Key{Field: DefaultField, Order: Desc}
}

// Compare returns -1, 0, or 1 ordering a before or after b. Descending is
// the negation of the ascending comparison. Equal keys fall back to the
// document identifier, ascending in both directions, so pages stay stable
// across requests.
func (k Key) Compare(a, b document.Document) int {
	c := compareField(k.Field, a, b)
	if k.Order == Desc {
		c = -c
	}
	if c == 0 {
		c = strings.Compare(a.ID(), b.ID())
	}
	return c
}

// Less adapts Compare for sort.SliceStable.
func (k Key) Less(a, b document.Document) bool {
	return k.Compare(a, b) < 0
}

func compareField(f Field, a, b document.Document) int {
	switch f {
	case FieldName:
		return compareFold(a.Name(), b.Name())
	case FieldType:
		return compareFold(a.Type(), b.Type())
	case FieldSize:
		return compareInt64(a.Size(), b.Size())
	case FieldCategory:
		return compareFold(a.Category(), b.Category())
	case FieldUploadDate:
		return compareTime(a.UploadedAt(), b.UploadedAt())
	case FieldLastModified:
		return compareTime(a.ModifiedAt(), b.ModifiedAt())
	case FieldAuthor:
		return compareFold(a.Author(), b.Author())
	default:
		return 0
	}
}

// compareFold is a case-insensitive ordinal comparison, locale-agnostic.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareTime orders by instant, not calendar day.
func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
