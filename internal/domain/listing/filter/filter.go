// Package filter evaluates listing predicates against documents.
package filter

import (
	"time"

	"github.com/docdex/docdex/internal/domain/document"
)

// Tristate is a three-variant predicate on a boolean document flag.
// The zero value imposes no restriction.
type Tristate int

const (
	// Unset ignores the flag.
	Unset Tristate = iota
	// RequireTrue matches only documents with the flag set.
	RequireTrue
	// RequireFalse matches only documents with the flag cleared.
	RequireFalse
)

// Of converts a concrete requirement into a Tristate.
func Of(want bool) Tristate {
	if want {
		return RequireTrue
	}
	return RequireFalse
}

// Allows reports whether the flag value satisfies the predicate.
func (t Tristate) Allows(v bool) bool {
	switch t {
	case RequireTrue:
		return v
	case RequireFalse:
		return !v
	default:
		return true
	}
}

// DateRange is an inclusive interval over the upload timestamp.
// An inverted range (Start after End) matches nothing.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls within the range, inclusive.
func (r DateRange) Contains(ts time.Time) bool {
	return !ts.Before(r.Start) && !ts.After(r.End)
}

// Spec is a set of independent predicates combined with AND. An empty
// membership set imposes no restriction; within a set the semantics are OR.
type Spec struct {
	Categories []string
	FileTypes  []string
	Projects   []string
	Authors    []string
	// Tags matches documents carrying at least one of the listed tags.
	Tags     []string
	Favorite Tristate
	Archived Tristate
	Uploaded *DateRange
}

// IsEmpty reports whether the spec imposes no restriction at all.
func (s Spec) IsEmpty() bool {
	return len(s.Categories) == 0 && len(s.FileTypes) == 0 &&
		len(s.Projects) == 0 && len(s.Authors) == 0 && len(s.Tags) == 0 &&
		s.Favorite == Unset && s.Archived == Unset && s.Uploaded == nil
}

// Matches reports whether the document satisfies every non-empty predicate.
func (s Spec) Matches(doc document.Document) bool {
	if !memberOf(doc.Category(), s.Categories) {
		return false
	}
	if !memberOf(doc.Type(), s.FileTypes) {
		return false
	}
	// Documents without a project never match a non-empty project filter.
	if len(s.Projects) > 0 && (doc.ProjectID() == "" || !memberOf(doc.ProjectID(), s.Projects)) {
		return false
	}
	if !memberOf(doc.Author(), s.Authors) {
		return false
	}
	if len(s.Tags) > 0 && !anyTag(doc, s.Tags) {
		return false
	}
	if !s.Favorite.Allows(doc.Favorite()) {
		return false
	}
	if !s.Archived.Allows(doc.Archived()) {
		return false
	}
	if s.Uploaded != nil && !s.Uploaded.Contains(doc.UploadedAt()) {
		return false
	}
	return true
}

func memberOf(v string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, m := range set {
		if m == v {
			return true
		}
	}
	return false
}

func anyTag(doc document.Document, tags []string) bool {
	for _, t := range tags {
		if doc.HasTag(t) {
			return true
		}
	}
	return false
}
