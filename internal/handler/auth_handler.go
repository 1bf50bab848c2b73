package handler

import (
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// AuthHandler struct
type AuthHandler struct {
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

func NewAuthHandler(authService service.AuthServiceInterface, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger.WithComponent("auth_handler"),
	}
}

// GetSession handles GET /api/v1/auth/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	session := h.authService.SessionFromRequest(r)
	if session == nil {
		writeErrorResponse(h.logger, w, http.StatusUnauthorized, service.ErrUnauthorized)
		reqCtx.StatusCode = http.StatusUnauthorized
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]interface{}{
		"user_id": session.UserID,
		"role":    session.Role,
	})
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// SignOut handles POST /api/v1/auth/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	result := h.authService.SignOut(w, r)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
