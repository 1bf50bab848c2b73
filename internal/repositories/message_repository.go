package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

type MessageRepositoryInterface interface {
	Create(message *models.Message) (string, error)
	GetAll() ([]models.Message, error)
}

// MessageRepository stores contact form submissions. Write-only from
// the public side, read-only from admin.
type MessageRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewMessageRepository(logger *logger.Logger, db *database.DB) *MessageRepository {
	return &MessageRepository{
		logger: logger.WithComponent("message_repository"),
		db:     db,
	}
}

// Create - inserts a contact message
func (r *MessageRepository) Create(message *models.Message) (string, error) {
	if message == nil {
		return "", errors.New("message cannot be nil")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO messages (id, name, email, message) VALUES ($1, $2, $3, $4)`,
		id, message.Name, message.Email, message.Message)
	if err != nil {
		r.logger.Error("Failed to add message", "error", err)
		return "", fmt.Errorf("failed to add message: %v", err)
	}

	r.logger.Info("Added contact message", "message_id", id)
	return id, nil
}

// GetAll - retrieves all contact messages, newest first
func (r *MessageRepository) GetAll() ([]models.Message, error) {
	rows, err := r.db.Query(
		`SELECT id, name, email, message, created_at FROM messages ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Failed to query messages", "error", err)
		return nil, fmt.Errorf("failed to query messages: %v", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		message := models.Message{}
		if err := rows.Scan(&message.ID, &message.Name, &message.Email,
			&message.Message, &message.CreatedAt); err != nil {
			r.logger.Error("Failed to scan message", "error", err)
			return nil, fmt.Errorf("failed to scan message: %v", err)
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}
