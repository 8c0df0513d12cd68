package chi

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	domdoc "github.com/docdex/docdex/internal/domain/document"
	"github.com/docdex/docdex/internal/domain/document/patch"
	domsearch "github.com/docdex/docdex/internal/domain/search"
	healthuc "github.com/docdex/docdex/internal/usecase/health"
)

// errorCode identifies the error class in API responses.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeDocumentNotFound errorCode = "document_not_found"
	codeAlreadyExists    errorCode = "already_exists"
	codeUnauthorized     errorCode = "unauthorized"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// documentResponse mirrors the document wire format.
type documentResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Size         int64     `json:"size"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	UploadDate   time.Time `json:"uploadDate"`
	LastModified time.Time `json:"lastModified"`
	Author       string    `json:"author"`
	ProjectID    string    `json:"projectId,omitempty"`
	IsFavorite   bool      `json:"isFavorite"`
	IsArchived   bool      `json:"isArchived"`
	URL          string    `json:"url,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
}

func documentToDTO(doc *domdoc.Document) documentResponse {
	tags := doc.Tags()
	if tags == nil {
		tags = []string{}
	}
	return documentResponse{
		ID:           doc.ID(),
		Name:         doc.Name(),
		Type:         doc.Type(),
		Size:         doc.Size(),
		Category:     doc.Category(),
		Tags:         tags,
		UploadDate:   doc.UploadedAt(),
		LastModified: doc.ModifiedAt(),
		Author:       doc.Author(),
		ProjectID:    doc.ProjectID(),
		IsFavorite:   doc.Favorite(),
		IsArchived:   doc.Archived(),
		URL:          doc.URL(),
		Thumbnail:    doc.Thumbnail(),
	}
}

type listResponse struct {
	Documents  []documentResponse `json:"documents"`
	TotalCount int                `json:"totalCount"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

type createDocumentRequest struct {
	Name      string   `json:"name"`
	Size      int64    `json:"size"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Author    string   `json:"author"`
	ProjectID string   `json:"projectId"`
	URL       string   `json:"url"`
	Thumbnail string   `json:"thumbnail"`
}

func (r createDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 512)),
		validation.Field(&r.Size, validation.Min(int64(0))),
		validation.Field(&r.Category, validation.Length(0, 128)),
		validation.Field(&r.Author, validation.Length(0, 128)),
	)
}

type patchDocumentRequest struct {
	Name      *string  `json:"name"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	Author    *string  `json:"author"`
	ProjectID *string  `json:"projectId"`
	Favorite  *bool    `json:"isFavorite"`
	Archived  *bool    `json:"isArchived"`
	URL       *string  `json:"url"`
	Thumbnail *string  `json:"thumbnail"`
}

func (r patchDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 512)),
		validation.Field(&r.Category, validation.Length(0, 128)),
		validation.Field(&r.Author, validation.Length(0, 128)),
	)
}

func (r patchDocumentRequest) toPatch() (patch.Patch, error) {
	return patch.New(patch.Attrs{
		Name:      r.Name,
		Category:  r.Category,
		Tags:      r.Tags,
		Author:    r.Author,
		ProjectID: r.ProjectID,
		Favorite:  r.Favorite,
		Archived:  r.Archived,
		URL:       r.URL,
		Thumbnail: r.Thumbnail,
	})
}

type searchHit struct {
	Document   documentResponse `json:"document"`
	Score      int              `json:"score"`
	Highlights []string         `json:"highlights"`
}

type facetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type facetsDTO struct {
	Categories []facetCount `json:"categories"`
	FileTypes  []facetCount `json:"fileTypes"`
	Projects   []facetCount `json:"projects"`
}

type searchResponse struct {
	Results    []searchHit `json:"results"`
	Facets     facetsDTO   `json:"facets"`
	TotalCount int         `json:"totalCount"`
}

func searchToDTO(results []domsearch.Result, facets domsearch.FacetSet) searchResponse {
	hits := make([]searchHit, len(results))
	for i := range results {
		doc := results[i].Document()
		highlights := results[i].Highlights()
		if highlights == nil {
			highlights = []string{}
		}
		hits[i] = searchHit{
			Document:   documentToDTO(&doc),
			Score:      results[i].Score(),
			Highlights: highlights,
		}
	}
	return searchResponse{
		Results:    hits,
		Facets:     facetsToDTO(facets),
		TotalCount: len(hits),
	}
}

func facetsToDTO(f domsearch.FacetSet) facetsDTO {
	return facetsDTO{
		Categories: facetCountsToDTO(f.Categories),
		FileTypes:  facetCountsToDTO(f.FileTypes),
		Projects:   facetCountsToDTO(f.Projects),
	}
}

func facetCountsToDTO(counts []domsearch.FacetCount) []facetCount {
	out := make([]facetCount, len(counts))
	for i, c := range counts {
		out[i] = facetCount{Name: c.Name, Count: c.Count}
	}
	return out
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type catalogResponse struct {
	Values []string `json:"values"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func healthToDTO(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}
