package handler

import (
	"errors"
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// ReviewHandler struct
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
	authService   service.AuthServiceInterface
	logger        *logger.Logger
}

func NewReviewHandler(reviewService service.ReviewServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		authService:   authService,
		logger:        logger.WithComponent("review_handler"),
	}
}

// SubmitReview handles POST /api/v1/reviews
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.ReviewForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for submit review", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.reviewService.SubmitReview(form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// ListReviews handles GET /api/v1/admin/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	reviews, err := h.reviewService.ListReviews(h.authService.SessionFromRequest(r))
	if err != nil {
		if errors.Is(err, service.ErrSessionRequired) {
			writeErrorResponse(h.logger, w, http.StatusUnauthorized, service.ErrUnauthorized)
			reqCtx.StatusCode = http.StatusUnauthorized
			h.logger.LogResponse(reqCtx)
			return
		}
		h.logger.Error("Failed to list reviews", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch reviews")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, reviews)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// ApproveReview handles POST /api/v1/admin/reviews/{id}/approve
func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/reviews")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid review ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.reviewService.ApproveReview(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// DeleteReview handles DELETE /api/v1/admin/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/reviews")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid review ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.reviewService.DeleteReview(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
