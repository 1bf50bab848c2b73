package handler

import (
	"errors"
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// HeroHandler struct
type HeroHandler struct {
	heroService service.HeroServiceInterface
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

func NewHeroHandler(heroService service.HeroServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *HeroHandler {
	return &HeroHandler{
		heroService: heroService,
		authService: authService,
		logger:      logger.WithComponent("hero_handler"),
	}
}

// ListActiveSlides handles GET /api/v1/hero-slides
func (h *HeroHandler) ListActiveSlides(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	slides, err := h.heroService.ListActive()
	if err != nil {
		h.logger.Error("Failed to list hero slides", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch slides")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, slides)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ListAllSlides handles GET /api/v1/admin/hero-slides
func (h *HeroHandler) ListAllSlides(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	slides, err := h.heroService.ListAll(h.authService.SessionFromRequest(r))
	if err != nil {
		if errors.Is(err, service.ErrSessionRequired) {
			writeErrorResponse(h.logger, w, http.StatusUnauthorized, service.ErrUnauthorized)
			reqCtx.StatusCode = http.StatusUnauthorized
			h.logger.LogResponse(reqCtx)
			return
		}
		h.logger.Error("Failed to list hero slides", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch slides")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, slides)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateSlide handles POST /api/v1/admin/hero-slides
func (h *HeroHandler) CreateSlide(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.HeroSlideForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for create slide", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.heroService.CreateSlide(h.authService.SessionFromRequest(r), form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// ToggleSlide handles POST /api/v1/admin/hero-slides/{id}/toggle
func (h *HeroHandler) ToggleSlide(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/hero-slides")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid slide ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for toggle slide", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.heroService.ToggleSlide(h.authService.SessionFromRequest(r), id, req.Active)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// DeleteSlide handles DELETE /api/v1/admin/hero-slides/{id}
func (h *HeroHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/hero-slides")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid slide ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.heroService.DeleteSlide(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
