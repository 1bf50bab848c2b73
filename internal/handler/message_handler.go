package handler

import (
	"errors"
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// MessageHandler struct
type MessageHandler struct {
	messageService service.MessageServiceInterface
	authService    service.AuthServiceInterface
	logger         *logger.Logger
}

func NewMessageHandler(messageService service.MessageServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		authService:    authService,
		logger:         logger.WithComponent("message_handler"),
	}
}

// SubmitContactForm handles POST /api/v1/contact
func (h *MessageHandler) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.ContactForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for contact form", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.messageService.SubmitContactForm(form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// ListMessages handles GET /api/v1/admin/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	messages, err := h.messageService.ListMessages(h.authService.SessionFromRequest(r))
	if err != nil {
		if errors.Is(err, service.ErrSessionRequired) {
			writeErrorResponse(h.logger, w, http.StatusUnauthorized, service.ErrUnauthorized)
			reqCtx.StatusCode = http.StatusUnauthorized
			h.logger.LogResponse(reqCtx)
			return
		}
		h.logger.Error("Failed to list messages", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch messages")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, messages)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
