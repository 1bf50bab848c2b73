package service

import (
	"github.com/FDead21/afc-web/internal/quiz"
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

type QuizAnswerForm struct {
	Text        string   `json:"text"`
	ProductTags []string `json:"product_tags"`
}

type QuizQuestionForm struct {
	Question   string           `json:"question"`
	OrderIndex int              `json:"order_index"`
	Answers    []QuizAnswerForm `json:"answers"`
}

type QuizServiceInterface interface {
	Questions() ([]models.QuizQuestion, error)
	Recommend(tags []string) (*models.Product, error)
	CreateQuestion(session *models.Session, form QuizQuestionForm) Result
	DeleteQuestion(session *models.Session, id string) Result
	CreateAnswer(session *models.Session, questionID string, form QuizAnswerForm) Result
	DeleteAnswer(session *models.Session, id string) Result
}

// QuizService loads quiz content and runs the recommendation scorer
// over the full product list. Per-visitor quiz state lives client-side;
// the service itself is stateless.
type QuizService struct {
	quizRepo    repositories.QuizRepositoryInterface
	productRepo repositories.ProductRepositoryInterface
	pages       *revalidate.Registry
	logger      *logger.Logger
}

func NewQuizService(
	quizRepo repositories.QuizRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	pages *revalidate.Registry,
	logger *logger.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:    quizRepo,
		productRepo: productRepo,
		pages:       pages,
		logger:      logger.WithComponent("quiz_service"),
	}
}

// Questions returns the quiz questions with answers, ordered by
// order_index ascending.
func (s *QuizService) Questions() ([]models.QuizQuestion, error) {
	questions, err := s.quizRepo.GetQuestions()
	if err != nil {
		return nil, err
	}
	return quiz.SortQuestions(questions), nil
}

// Recommend scores the accumulated answer tags against every product
// and returns the winner. Nil means the catalog is empty.
func (s *QuizService) Recommend(tags []string) (*models.Product, error) {
	products, err := s.productRepo.GetAll(repositories.ProductFilter{})
	if err != nil {
		s.logger.Warn("Failed to load products for recommendation", "error", err)
		return nil, err
	}

	candidates := make([]models.Product, 0, len(products))
	for _, product := range products {
		candidates = append(candidates, *product)
	}

	return quiz.Recommend(tags, candidates), nil
}

// CreateQuestion creates a question and its answers in one action
func (s *QuizService) CreateQuestion(session *models.Session, form QuizQuestionForm) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if form.Question == "" {
		return errorResult("Question text is required.")
	}

	id, err := s.quizRepo.CreateQuestion(form.Question, form.OrderIndex)
	if err != nil {
		s.logger.Warn("Create quiz question failed", "error", err)
		return errorResult("Failed to create question: " + err.Error())
	}

	for _, answer := range form.Answers {
		if answer.Text == "" {
			continue
		}
		if _, err := s.quizRepo.CreateAnswer(id, answer.Text, answer.ProductTags); err != nil {
			s.logger.Warn("Create quiz answer failed", "error", err, "question_id", id)
			return errorResult("Failed to create answer: " + err.Error())
		}
	}

	s.pages.Invalidate("/admin/quiz")
	return Result{Success: "Question created", ID: id}
}

// DeleteQuestion removes a question; its answers go with it
func (s *QuizService) DeleteQuestion(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.quizRepo.DeleteQuestion(id); err != nil {
		s.logger.Warn("Delete quiz question failed", "error", err, "question_id", id)
		return errorResult("Failed to delete question: " + err.Error())
	}

	s.pages.Invalidate("/admin/quiz")
	return successResult("Question deleted")
}

// CreateAnswer adds one answer to an existing question
func (s *QuizService) CreateAnswer(session *models.Session, questionID string, form QuizAnswerForm) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if questionID == "" || form.Text == "" {
		return errorResult("Question ID and answer text are required.")
	}

	id, err := s.quizRepo.CreateAnswer(questionID, form.Text, form.ProductTags)
	if err != nil {
		s.logger.Warn("Create quiz answer failed", "error", err, "question_id", questionID)
		return errorResult("Failed to create answer: " + err.Error())
	}

	s.pages.Invalidate("/admin/quiz")
	return Result{Success: "Answer created", ID: id}
}

// DeleteAnswer removes one answer
func (s *QuizService) DeleteAnswer(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.quizRepo.DeleteAnswer(id); err != nil {
		s.logger.Warn("Delete quiz answer failed", "error", err, "answer_id", id)
		return errorResult("Failed to delete answer: " + err.Error())
	}

	s.pages.Invalidate("/admin/quiz")
	return successResult("Answer deleted")
}
