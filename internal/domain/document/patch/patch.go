// Package patch defines partial document updates. The identifier and the
// derived file type are never patchable.
package patch

import "fmt"

// Patch is a partial document update. Nil fields are unchanged.
type Patch struct {
	name      *string
	category  *string
	tags      []string
	author    *string
	projectID *string
	favorite  *bool
	archived  *bool
	url       *string
	thumbnail *string
}

// Attrs carries the optional fields of a Patch.
type Attrs struct {
	Name      *string
	Category  *string
	Tags      []string
	Author    *string
	ProjectID *string
	Favorite  *bool
	Archived  *bool
	URL       *string
	Thumbnail *string
}

// New validates and creates a Patch. At least one field must be provided.
func New(a Attrs) (Patch, error) {
	p := Patch{
		name:      a.Name,
		category:  a.Category,
		tags:      a.Tags,
		author:    a.Author,
		projectID: a.ProjectID,
		favorite:  a.Favorite,
		archived:  a.Archived,
		url:       a.URL,
		thumbnail: a.Thumbnail,
	}
	if p.IsEmpty() {
		return Patch{}, fmt.Errorf("at least one field must be provided")
	}
	if a.Name != nil && *a.Name == "" {
		return Patch{}, fmt.Errorf("document name cannot be cleared")
	}
	return p, nil
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.name == nil && p.category == nil && p.tags == nil &&
		p.author == nil && p.projectID == nil && p.favorite == nil &&
		p.archived == nil && p.url == nil && p.thumbnail == nil
}

// Name returns the new name, or nil if unchanged.
func (p Patch) Name() *string { return p.name }

// Category returns the new category, or nil if unchanged.
func (p Patch) Category() *string { return p.category }

// Tags returns the replacement tag list, or nil if unchanged.
func (p Patch) Tags() []string { return p.tags }

// Author returns the new author, or nil if unchanged.
func (p Patch) Author() *string { return p.author }

// ProjectID returns the new project assignment, or nil if unchanged.
// An empty string clears the assignment.
func (p Patch) ProjectID() *string { return p.projectID }

// Favorite returns the new favorite flag, or nil if unchanged.
func (p Patch) Favorite() *bool { return p.favorite }

// Archived returns the new archived flag, or nil if unchanged.
func (p Patch) Archived() *bool { return p.archived }

// URL returns the new content reference, or nil if unchanged.
func (p Patch) URL() *string { return p.url }

// Thumbnail returns the new thumbnail reference, or nil if unchanged.
func (p Patch) Thumbnail() *string { return p.thumbnail }
