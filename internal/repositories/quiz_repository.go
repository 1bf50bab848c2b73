package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

type QuizRepositoryInterface interface {
	GetQuestions() ([]models.QuizQuestion, error)
	CreateQuestion(question string, orderIndex int) (string, error)
	CreateAnswer(questionID, text string, productTags []string) (string, error)
	DeleteQuestion(id string) error
	DeleteAnswer(id string) error
}

type QuizRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewQuizRepository(logger *logger.Logger, db *database.DB) *QuizRepository {
	return &QuizRepository{
		logger: logger.WithComponent("quiz_repository"),
		db:     db,
	}
}

// GetQuestions - retrieves all questions with their answers nested,
// ordered by order_index ascending
func (r *QuizRepository) GetQuestions() ([]models.QuizQuestion, error) {
	r.logger.Debug("Retrieving quiz questions from database")

	query := `
        SELECT q.id, q.question, q.order_index,
               COALESCE(
                   json_agg(
                       json_build_object(
                           'id', a.id,
                           'question_id', a.question_id,
                           'text', a.text,
                           'product_tags', a.product_tags
                       )
                       ORDER BY a.created_at
                   ) FILTER (WHERE a.id IS NOT NULL), '[]'::json
               ) as answers
        FROM quiz_questions q
        LEFT JOIN quiz_answers a ON a.question_id = q.id
        GROUP BY q.id, q.question, q.order_index
        ORDER BY q.order_index
    `

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to query quiz questions", "error", err)
		return nil, fmt.Errorf("failed to query quiz questions: %v", err)
	}
	defer rows.Close()

	questions := []models.QuizQuestion{}
	for rows.Next() {
		question := models.QuizQuestion{}
		answersJSON := ""

		if err := rows.Scan(&question.ID, &question.Question, &question.OrderIndex, &answersJSON); err != nil {
			r.logger.Error("Failed to scan quiz question", "error", err)
			return nil, fmt.Errorf("failed to scan quiz question: %v", err)
		}

		if err := json.Unmarshal([]byte(answersJSON), &question.Answers); err != nil {
			r.logger.Error("Failed to parse quiz answers", "error", err, "question_id", question.ID)
			return nil, fmt.Errorf("invalid JSON format for quiz answers: %v", err)
		}

		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz question rows: %v", err)
	}

	r.logger.Info("Retrieved quiz questions", "count", len(questions))
	return questions, nil
}

// CreateQuestion - inserts a quiz question and returns its id
func (r *QuizRepository) CreateQuestion(question string, orderIndex int) (string, error) {
	if question == "" {
		return "", errors.New("question text cannot be empty")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO quiz_questions (id, question, order_index) VALUES ($1, $2, $3)`,
		id, question, orderIndex)
	if err != nil {
		r.logger.Error("Failed to add quiz question", "error", err)
		return "", fmt.Errorf("failed to add quiz question: %v", err)
	}

	r.logger.Info("Added quiz question", "question_id", id, "order_index", orderIndex)
	return id, nil
}

// CreateAnswer - inserts an answer with its product tag list
func (r *QuizRepository) CreateAnswer(questionID, text string, productTags []string) (string, error) {
	if questionID == "" || text == "" {
		return "", errors.New("answer question ID and text cannot be empty")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO quiz_answers (id, question_id, text, product_tags) VALUES ($1, $2, $3, $4)`,
		id, questionID, text, pq.Array(productTags))
	if err != nil {
		r.logger.Error("Failed to add quiz answer", "error", err, "question_id", questionID)
		return "", fmt.Errorf("failed to add quiz answer: %v", err)
	}

	r.logger.Info("Added quiz answer", "answer_id", id, "question_id", questionID)
	return id, nil
}

// DeleteQuestion - removes a question; its answers cascade at the store
func (r *QuizRepository) DeleteQuestion(id string) error {
	result, err := r.db.Exec(`DELETE FROM quiz_questions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete quiz question", "error", err, "question_id", id)
		return fmt.Errorf("failed to delete quiz question: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent quiz question", "question_id", id)
		return fmt.Errorf("quiz question with id %s not found", id)
	}

	r.logger.Info("Deleted quiz question", "question_id", id)
	return nil
}

// DeleteAnswer - removes one answer
func (r *QuizRepository) DeleteAnswer(id string) error {
	result, err := r.db.Exec(`DELETE FROM quiz_answers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete quiz answer", "error", err, "answer_id", id)
		return fmt.Errorf("failed to delete quiz answer: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent quiz answer", "answer_id", id)
		return fmt.Errorf("quiz answer with id %s not found", id)
	}

	r.logger.Info("Deleted quiz answer", "answer_id", id)
	return nil
}
