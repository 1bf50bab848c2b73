package handler

import (
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// BlogHandler struct
type BlogHandler struct {
	blogService service.BlogServiceInterface
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

func NewBlogHandler(blogService service.BlogServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		authService: authService,
		logger:      logger.WithComponent("blog_handler"),
	}
}

// ListPosts handles GET /api/v1/posts
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	posts, err := h.blogService.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch posts")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, posts)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// GetPost handles GET /api/v1/posts/{id}
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/posts")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid post ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	post, err := h.blogService.GetPost(id)
	if err != nil {
		h.logger.Warn("Post not found", "id", id, "error", err)
		writeErrorResponse(h.logger, w, http.StatusNotFound, "Post not found")
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, post)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreatePost handles POST /api/v1/admin/posts
func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.PostForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for create post", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.blogService.CreatePost(h.authService.SessionFromRequest(r), form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// UpdatePost handles PUT /api/v1/admin/posts/{id}
func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/posts")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid post ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	var form service.PostForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for update post", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.blogService.UpdatePost(h.authService.SessionFromRequest(r), id, form)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// DeletePost handles DELETE /api/v1/admin/posts/{id}
func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/posts")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid post ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.blogService.DeletePost(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
