package handler

import (
	"net/http"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/pkg/logger"
)

// QuizHandler struct
type QuizHandler struct {
	quizService service.QuizServiceInterface
	authService service.AuthServiceInterface
	logger      *logger.Logger
}

func NewQuizHandler(quizService service.QuizServiceInterface, authService service.AuthServiceInterface, logger *logger.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		authService: authService,
		logger:      logger.WithComponent("quiz_handler"),
	}
}

// GetQuestions handles GET /api/v1/quiz/questions
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	questions, err := h.quizService.Questions()
	if err != nil {
		h.logger.Error("Failed to load quiz questions", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch questions")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, questions)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// Recommend handles POST /api/v1/quiz/recommend
func (h *QuizHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var req struct {
		Tags []string `json:"tags"`
	}
	if err := parseRequestBody(r, &req); err != nil {
		h.logger.Warn("Invalid request body for recommend", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	product, err := h.quizService.Recommend(req.Tags)
	if err != nil {
		h.logger.Error("Failed to compute recommendation", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to compute recommendation")
		reqCtx.StatusCode = http.StatusInternalServerError
		h.logger.LogResponse(reqCtx)
		return
	}
	if product == nil {
		writeErrorResponse(h.logger, w, http.StatusNotFound, "No products available")
		reqCtx.StatusCode = http.StatusNotFound
		h.logger.LogResponse(reqCtx)
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, product)
	reqCtx.StatusCode = http.StatusOK
	h.logger.LogResponse(reqCtx)
}

// CreateQuestion handles POST /api/v1/admin/quiz/questions
func (h *QuizHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	var form service.QuizQuestionForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for create question", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.quizService.CreateQuestion(h.authService.SessionFromRequest(r), form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// DeleteQuestion handles DELETE /api/v1/admin/quiz/questions/{id}
func (h *QuizHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/quiz/questions")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid question ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.quizService.DeleteQuestion(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}

// CreateAnswer handles POST /api/v1/admin/quiz/questions/{id}/answers
func (h *QuizHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	questionID := extractIDFromPath(r, "/api/v1/admin/quiz/questions")
	if questionID == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid question ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	var form service.QuizAnswerForm
	if err := parseRequestBody(r, &form); err != nil {
		h.logger.Warn("Invalid request body for create answer", "error", err)
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid request body")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.quizService.CreateAnswer(h.authService.SessionFromRequest(r), questionID, form)
	writeResult(h.logger, w, reqCtx, result, http.StatusCreated)
}

// DeleteAnswer handles DELETE /api/v1/admin/quiz/answers/{id}
func (h *QuizHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	reqCtx := newRequestContext(r)
	h.logger.LogRequest(reqCtx)

	id := extractIDFromPath(r, "/api/v1/admin/quiz/answers")
	if id == "" {
		writeErrorResponse(h.logger, w, http.StatusBadRequest, "Invalid answer ID")
		reqCtx.StatusCode = http.StatusBadRequest
		h.logger.LogResponse(reqCtx)
		return
	}

	result := h.quizService.DeleteAnswer(h.authService.SessionFromRequest(r), id)
	writeResult(h.logger, w, reqCtx, result, http.StatusOK)
}
