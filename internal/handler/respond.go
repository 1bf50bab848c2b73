package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// Shared response plumbing for all handlers. Every handler logs the
// request/response pair through a RequestContext and renders JSON the
// same way, so the helpers live here instead of per handler.

func newRequestContext(r *http.Request) *logger.RequestContext {
	return &logger.RequestContext{
		Method:     r.Method,
		Path:       r.URL.Path,
		RemoteAddr: r.RemoteAddr,
		StartTime:  time.Now(),
	}
}

// writeJSONResponse writes JSON response with given status code and data
func writeJSONResponse(log *logger.Logger, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Error("Failed to encode JSON response", "error", err)
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// writeErrorResponse writes an error response with given status code and message
func writeErrorResponse(log *logger.Logger, w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}

// writeResult renders a service Result: errors map to 400, the fixed
// gate-failure message to 401, success to the given status.
func writeResult(log *logger.Logger, w http.ResponseWriter, reqCtx *logger.RequestContext, result service.Result, successStatus int) {
	if result.IsError() {
		statusCode := http.StatusBadRequest
		if result.Error == service.ErrUnauthorized {
			statusCode = http.StatusUnauthorized
		}
		writeJSONResponse(log, w, statusCode, result)
		reqCtx.StatusCode = statusCode
		log.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(log, w, successStatus, result)
	reqCtx.StatusCode = successStatus
	log.LogResponse(reqCtx)
}

// parseRequestBody parses JSON request body into the target struct
func parseRequestBody(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

// extractIDFromPath extracts the segment following prefix in the URL
// path (expects {prefix}/{id} or {prefix}/{id}/{action})
func extractIDFromPath(r *http.Request, prefix string) string {
	path := strings.TrimPrefix(r.URL.Path, prefix)
	path = strings.TrimPrefix(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}

	return ""
}
