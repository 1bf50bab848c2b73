package handler

import (
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
)

// ContentHandler serves site copy, the homepage section layout and the
// composed homepage view.
type ContentHandler struct {
	contentService service.ContentServiceInterface
	authService    service.AuthServiceInterface
	logger         *logger.Logger
}

func NewContentHandler(contentService service.ContentServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		authService:    authService,
		logger:         logger.WithComponent("content_handler"),
	}
}

// GetSiteCopy handles GET /api/v1/content
func (h *ContentHandler) GetSiteCopy(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	copyMap, err := h.contentService.SiteCopy()
	if err != nil {
		h.logger.Error("Failed to load site copy", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch content")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, copyMap)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// UpdateSiteContent handles PUT /api/v1/admin/content
func (h *ContentHandler) UpdateSiteContent(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var values map[string]string
	if err := parseRequestBody(r, &values); err != nil {
		h.logger.Warn("Invalid request body for update content", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.contentService.UpdateSiteContent(h.authService.SessionFromRequest(r), values)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// GetSections handles GET /api/v1/admin/sections
func (h *ContentHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	if h.authService.SessionFromRequest(r) == nil {
		writeErrorResponse(h.logger, w, http.StatusUnauthorized, service.ErrUnauthorized)
		reqCtx.StatusCode = http.StatusUnauthorized
		h.logger.LogResponse(reqCtx)
		return
	}

	sections, err := h.contentService.GetSections()
	if err != nil {
		h.logger.Error("Failed to load sections", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch sections")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, sections)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// SaveSections handles PUT /api/v1/admin/sections
func (h *ContentHandler) SaveSections(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var sections []models.Section
	if err := parseRequestBody(r, &sections); err != nil {
		h.logger.Warn("Invalid request body for save sections", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.contentService.SaveSections(h.authService.SessionFromRequest(r), sections)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// GetHomepage handles GET /api/v1/homepage
func (h *ContentHandler) GetHomepage(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	view, err := h.contentService.Homepage()
	if err != nil {
		h.logger.Error("Failed to compose homepage", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch homepage")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, view)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
