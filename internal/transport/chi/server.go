// Package chi exposes the document API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/docdex/docdex/internal/domain"
	"github.com/docdex/docdex/internal/metrics"
	documentuc "github.com/docdex/docdex/internal/usecase/document"
	healthuc "github.com/docdex/docdex/internal/usecase/health"
	listinguc "github.com/docdex/docdex/internal/usecase/listing"
	searchuc "github.com/docdex/docdex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the usecases into HTTP handlers.
type Server struct {
	documents     *documentuc.Service
	listing       *listinguc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	documents *documentuc.Service,
	listing *listinguc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		documents: documents,
		listing:   listing,
		search:    search,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, codeDocumentNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrUnknownSortField, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidParameter, http.StatusBadRequest, codeBadRequest),
	}
	return s
}

// Mount registers the API routes on the router.
func (s *Server) Mount(r chirouter.Router) {
	r.Get("/documents", s.ListDocuments)
	r.Post("/documents", s.CreateDocument)
	r.Get("/documents/{id}", s.GetDocument)
	r.Patch("/documents/{id}", s.PatchDocument)
	r.Delete("/documents/{id}", s.DeleteDocument)

	r.Get("/search", s.SearchDocuments)
	r.Get("/search/suggestions", s.SearchSuggestions)

	r.Get("/catalog/categories", s.ListCategories)
	r.Get("/catalog/authors", s.ListAuthors)
	r.Get("/catalog/tags", s.ListTags)

	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)
}

// ListDocuments handles GET /documents.
func (s *Server) ListDocuments(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		metrics.ListingRequestsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.listing.List(r.Context(), req)
	if err != nil {
		metrics.ListingRequestsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.ListingRequestsTotal.WithLabelValues("ok").Inc()

	docs := make([]documentResponse, len(resp.Documents))
	for i := range resp.Documents {
		docs[i] = documentToDTO(&resp.Documents[i])
	}

	page, size := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	writeJSON(w, http.StatusOK, listResponse{
		Documents:  docs,
		TotalCount: resp.TotalCount,
		Page:       page,
		PageSize:   size,
	})
}

// CreateDocument handles POST /documents.
func (s *Server) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	doc, err := s.documents.Create(r.Context(), documentuc.CreateRequest{
		Name:      req.Name,
		Size:      req.Size,
		Category:  req.Category,
		Tags:      req.Tags,
		Author:    req.Author,
		ProjectID: req.ProjectID,
		URL:       req.URL,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("create", "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.DocumentOpsTotal.WithLabelValues("create", "ok").Inc()

	w.Header().Set("Location", "/api/v1/documents/"+doc.ID())
	writeJSON(w, http.StatusCreated, documentToDTO(&doc))
}

// GetDocument handles GET /documents/{id}.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	doc, err := s.documents.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToDTO(&doc))
}

// PatchDocument handles PATCH /documents/{id}.
func (s *Server) PatchDocument(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	var req patchDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	p, err := req.toPatch()
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	doc, err := s.documents.Update(r.Context(), id, p)
	if err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("update", "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.DocumentOpsTotal.WithLabelValues("update", "ok").Inc()

	writeJSON(w, http.StatusOK, documentToDTO(&doc))
}

// DeleteDocument handles DELETE /documents/{id}.
func (s *Server) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")

	if err := s.documents.Delete(r.Context(), id); err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("delete", "error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.DocumentOpsTotal.WithLabelValues("delete", "ok").Inc()

	w.WriteHeader(http.StatusNoContent)
}

// SearchDocuments handles GET /search.
func (s *Server) SearchDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, facets, err := s.search.Search(r.Context(), query)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		s.handleDomainError(w, err)
		return
	}
	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchResultCount.Observe(float64(len(results)))

	writeJSON(w, http.StatusOK, searchToDTO(results, facets))
}

// SearchSuggestions handles GET /search/suggestions.
func (s *Server) SearchSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	suggestions, err := s.search.Suggest(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

// ListCategories handles GET /catalog/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, r, s.documents.Categories)
}

// ListAuthors handles GET /catalog/authors.
func (s *Server) ListAuthors(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, r, s.documents.Authors)
}

// ListTags handles GET /catalog/tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	s.writeCatalog(w, r, s.documents.Tags)
}

func (s *Server) writeCatalog(
	w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context) ([]string, error),
) {
	values, err := list(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{Values: values})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, healthToDTO(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrAlreadyExists,
		domain.ErrUnknownSortField,
		domain.ErrInvalidParameter,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
