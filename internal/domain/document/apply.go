package document

import (
	"time"

	"github.com/docdex/docdex/internal/domain/document/patch"
)

// WithPatch returns a copy with the patch applied and modifiedAt refreshed.
// The identifier, file type, and uploadedAt are preserved.
func (d Document) WithPatch(p patch.Patch, now time.Time) Document {
	out := d
	if v := p.Name(); v != nil {
		out.name = *v
	}
	if v := p.Category(); v != nil {
		out.category = *v
	}
	if v := p.Tags(); v != nil {
		out.tags = cloneStrings(v)
	}
	if v := p.Author(); v != nil {
		out.author = *v
	}
	if v := p.ProjectID(); v != nil {
		out.projectID = *v
	}
	if v := p.Favorite(); v != nil {
		out.favorite = *v
	}
	if v := p.Archived(); v != nil {
		out.archived = *v
	}
	if v := p.URL(); v != nil {
		out.url = *v
	}
	if v := p.Thumbnail(); v != nil {
		out.thumbnail = *v
	}
	out.modifiedAt = now
	return out
}
