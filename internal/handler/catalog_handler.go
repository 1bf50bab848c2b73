package handler

import (
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// CatalogHandler serves the category and ingredient taxonomy.
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
	authService    service.AuthServiceInterface
	logger         *logger.Logger
}

func NewCatalogHandler(catalogService service.CatalogServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		authService:    authService,
		logger:         logger.WithComponent("catalog_handler"),
	}
}

// ListCategories handles GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	categories, err := h.catalogService.ListCategories()
	if err != nil {
		h.logger.Error("Failed to list categories", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch categories")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, categories)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateCategory handles POST /api/v1/admin/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req struct {
		Name string `json:"name"`
	}
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for create category", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.catalogService.CreateCategory(h.authService.SessionFromRequest(r), req.Name)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// DeleteCategory handles DELETE /api/v1/admin/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/categories")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid category ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.catalogService.DeleteCategory(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// ListIngredients handles GET /api/v1/ingredients
func (h *CatalogHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	ingredients, err := h.catalogService.ListIngredients()
	if err != nil {
		h.logger.Error("Failed to list ingredients", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch ingredients")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, ingredients)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateIngredient handles POST /api/v1/admin/ingredients
func (h *CatalogHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.IngredientForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for create ingredient", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.catalogService.CreateIngredient(h.authService.SessionFromRequest(r), form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// DeleteIngredient handles DELETE /api/v1/admin/ingredients/{id}
func (h *CatalogHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/ingredients")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid ingredient ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.catalogService.DeleteIngredient(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
