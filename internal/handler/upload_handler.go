package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// maxUploadMemory bounds the in-memory part of multipart parsing;
// larger files spill to temp files.
const maxUploadMemory = 32 << 20

// UploadHandler accepts multipart image uploads.
type UploadHandler struct {
	uploadService service.UploadServiceInterface
	authService   service.AuthServiceInterface
	logger        *logger.Logger
}

func NewUploadHandler(uploadService service.UploadServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		authService:   authService,
		logger:        logger.WithComponent("upload_handler"),
	}
}

// UploadImage handles POST /api/v1/admin/uploads/image with a "file" part
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	file, cleanup, ok := h.formFile(w, r, reqCtx, "file")
	if !ok {
		return
	}
	defer cleanup()

	result := h.uploadService.UploadImage(r.Context(), h.authService.SessionFromRequest(r), file)
	if result.IsError() {
		statusCode := http.StatusBadRequest
		if result.Error == service.ErrUnauthorized {
			statusCode = http.StatusUnauthorized
		}
		writeJSONResponse(h.logger, w, statusCode, result)
		reqCtx.StatusCode = statusCode
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusCreated, result)
	reqCtx.StatusCode = http.StatusCreated
	h.logger.LogResponse(reqCtx)
}

// UploadProductImages handles POST /api/v1/admin/products/{id}/images
// with one or more "files" parts
func (h *UploadHandler) UploadProductImages(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	productID := extractIDFromPath(r, "/api/v1/admin/products")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Warn("Invalid multipart form", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid multipart form")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}
	defer r.MultipartForm.RemoveAll()

	var files []*service.UploadFile
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			f, err := header.Open()
			if err != nil {
				h.logger.Warn("Failed to open uploaded file", "error", err, "name", header.Filename)
				writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid multipart form")
				reqCtx.StatusCode = http.StatusBadRequest
				h.logger.LogResponse(reqCtx)
				return
			}
			opened = append(opened, f)
			files = append(files, &service.UploadFile{
				Name:        header.Filename,
				Size:        header.Size,
				ContentType: header.Header.Get("Content-Type"),
				Reader:      f,
			})
		}
	}

	result := h.uploadService.UploadProductImages(r.Context(), h.authService.SessionFromRequest(r), productID, files)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// UpdateHeroImage handles POST /api/v1/admin/uploads/hero-image with a
// "heroImage" part
func (h *UploadHandler) UpdateHeroImage(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	file, cleanup, ok := h.formFile(w, r, reqCtx, "heroImage")
	if !ok {
		return
	}
	defer cleanup()

	result := h.uploadService.UpdateHeroImage(r.Context(), h.authService.SessionFromRequest(r), file)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// formFile pulls a single named file out of the multipart form. A
// missing part is not an error here: the service reports the exact
// user-facing message for an absent file.
func (h *UploadHandler) formFile(w http.ResponseWriter, r *http.Request, reqCtx *logger.RequestContext, field string) (*service.UploadFile, func(), bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Warn("Invalid multipart form", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid multipart form")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return nil, nil, false
	}

	f, header, err := r.FormFile(field)
	if err != nil {
		return nil, func() { r.MultipartForm.RemoveAll() }, true
	}

	cleanup := func() {
		f.Close()
		r.MultipartForm.RemoveAll()
	}
	return &service.UploadFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      f,
	}, cleanup, true
}
