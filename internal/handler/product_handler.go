package handler

import (
	"net/http"
	"strings"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// ProductHandler struct
type ProductHandler struct {
	productService service.ProductServiceInterface
	catalogService service.CatalogServiceInterface
	authService    service.AuthServiceInterface
	logger         *logger.Logger
}

// NewProductHandler creates a new ProductHandler with the given services and logger
func NewProductHandler(
	productService service.ProductServiceInterface,
	catalogService service.CatalogServiceInterface,
	authService service.AuthServiceInterface,
	logger *logger.Logger,
) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		catalogService: catalogService,
		authService:    authService,
		logger:         logger.WithComponent("product_handler"),
	}
}

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	query := r.URL.Query()
	products, err := h.catalogService.ListProducts(query.Get("search"), query.Get("category"))
	if err != nil {
		h.logger.Error("Failed to list products", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, err.Error())
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, products)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/products")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	detail, err := h.catalogService.GetProductDetail(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Warn("Product not found", "id", id)
			writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
			reqCtx.StatusCode = http.StatusNotFound
			h.logger.LogResponse(reqCtx)
			return
		}
		h.logger.Error("Failed to load product", "id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, err.Error())
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, detail)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetProductEditForm handles GET /api/v1/admin/products/{id}/edit-form
func (h *ProductHandler) GetProductEditForm(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	if h.authService.SessionFromRequest(r) == nil {
		writeErrorResponse(h.logger, w, http.StatusUnauthorized, service.ErrUnauthorized)
		reqCtx.StatusCode = http.StatusUnauthorized
		h.logger.LogResponse(reqCtx)
		return
	}

	id := extractIDFromPath(r, "/api/v1/admin/products")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	form, err := h.catalogService.GetProductEditForm(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			h.logger.Warn("Product not found for edit form", "id", id)
			writeErrorResponse(h.logger, w, http.StatusNotFound, "Product not found")
			reqCtx.StatusCode = http.StatusNotFound
			h.logger.LogResponse(reqCtx)
			return
		}
		h.logger.Error("Failed to load edit form", "id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, err.Error())
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, form)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateProduct handles POST /api/v1/admin/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.ProductForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for create product", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.productService.CreateProduct(h.authService.SessionFromRequest(r), form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// UpdateProduct handles PUT /api/v1/admin/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/products")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	var form service.ProductForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for update product", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.productService.UpdateProduct(h.authService.SessionFromRequest(r), id, form)
	if result.IsError() && strings.Contains(result.Error, "not found") {
		writeJSONResponse(h.logger, w, http.StatusNotFound, result)
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// DeleteProduct handles DELETE /api/v1/admin/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/products")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid product ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.productService.DeleteProduct(h.authService.SessionFromRequest(r), id)
	if result.IsError() && strings.Contains(result.Error, "not found") {
		writeJSONResponse(h.logger, w, http.StatusNotFound, result)
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// DeleteProductImage handles DELETE /api/v1/admin/product-images/{id}
func (h *ProductHandler) DeleteProductImage(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/product-images")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid image ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.productService.DeleteProductImage(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
