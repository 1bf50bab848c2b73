package handler

import (
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// SearchHandler struct
type SearchHandler struct {
	searchService service.SearchServiceInterface
	logger        *logger.Logger
}

func NewSearchHandler(searchService service.SearchServiceInterface, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger.WithComponent("search_handler"),
	}
}

// Search handles GET /api/v1/search?q=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	results, err := h.searchService.Search(r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("Search failed", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Search failed")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, results)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}
