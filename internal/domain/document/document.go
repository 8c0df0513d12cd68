package document

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UnknownType is assigned when a file name carries no extension.
const UnknownType = "unknown"

// Document is the document aggregate (immutable value object).
// The file type is derived from the name extension once at creation and
// never changes afterwards, even if the document is renamed.
type Document struct {
	id         string
	name       string
	fileType   string
	size       int64
	category   string
	tags       []string
	uploadedAt time.Time
	modifiedAt time.Time
	author     string
	projectID  string
	favorite   bool
	archived   bool
	url        string
	thumbnail  string
}

// Attrs carries the caller-supplied metadata for a new document.
type Attrs struct {
	Category  string
	Tags      []string
	Author    string
	ProjectID string
	URL       string
	Thumbnail string
}

// New validates and creates a Document. The file type is derived from the
// name extension; uploadedAt and modifiedAt are both set to now.
func New(id, name string, size int64, now time.Time, attrs Attrs) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if name == "" {
		return Document{}, fmt.Errorf("document name is required")
	}
	if size < 0 {
		return Document{}, fmt.Errorf("document size must be non-negative, got %d", size)
	}

	return Document{
		id:         id,
		name:       name,
		fileType:   TypeFromName(name),
		size:       size,
		category:   attrs.Category,
		tags:       cloneStrings(attrs.Tags),
		uploadedAt: now,
		modifiedAt: now,
		author:     attrs.Author,
		projectID:  attrs.ProjectID,
		url:        attrs.URL,
		thumbnail:  attrs.Thumbnail,
	}, nil
}

// Fields holds every persisted attribute for storage hydration.
type Fields struct {
	ID         string
	Name       string
	Type       string
	Size       int64
	Category   string
	Tags       []string
	UploadedAt time.Time
	ModifiedAt time.Time
	Author     string
	ProjectID  string
	Favorite   bool
	Archived   bool
	URL        string
	Thumbnail  string
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(f Fields) Document {
	return Document{
		id:         f.ID,
		name:       f.Name,
		fileType:   f.Type,
		size:       f.Size,
		category:   f.Category,
		tags:       f.Tags,
		uploadedAt: f.UploadedAt,
		modifiedAt: f.ModifiedAt,
		author:     f.Author,
		projectID:  f.ProjectID,
		favorite:   f.Favorite,
		archived:   f.Archived,
		url:        f.URL,
		thumbnail:  f.Thumbnail,
	}
}

// TypeFromName derives the lowercase file type from a file name extension.
func TypeFromName(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return UnknownType
	}
	return strings.ToLower(ext)
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// Name returns the document file name.
func (d Document) Name() string { return d.name }

// Type returns the lowercase file type.
func (d Document) Type() string { return d.fileType }

// Size returns the document size in bytes.
func (d Document) Size() int64 { return d.size }

// Category returns the document category.
func (d Document) Category() string { return d.category }

// Tags returns the document tags in insertion order.
func (d Document) Tags() []string { return d.tags }

// UploadedAt returns the upload timestamp.
func (d Document) UploadedAt() time.Time { return d.uploadedAt }

// ModifiedAt returns the last modification timestamp.
func (d Document) ModifiedAt() time.Time { return d.modifiedAt }

// Author returns the document author.
func (d Document) Author() string { return d.author }

// ProjectID returns the owning project identifier, or "" if unassigned.
func (d Document) ProjectID() string { return d.projectID }

// Favorite reports whether the document is marked as a favorite.
func (d Document) Favorite() bool { return d.favorite }

// Archived reports whether the document is archived.
func (d Document) Archived() bool { return d.archived }

// URL returns the content reference, or "".
func (d Document) URL() string { return d.url }

// Thumbnail returns the thumbnail reference, or "".
func (d Document) Thumbnail() string { return d.thumbnail }

// HasTag reports whether the document carries the given tag.
func (d Document) HasTag(tag string) bool {
	for _, t := range d.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}
