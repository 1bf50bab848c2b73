package repositories

import (
	"database/sql"
	"fmt"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

type SessionRepositoryInterface interface {
	GetByToken(token string) (*models.Session, error)
	Delete(token string) error
}

// SessionRepository resolves auth-service session cookies against the
// sessions table. Session creation belongs to the hosted auth service,
// not this application.
type SessionRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewSessionRepository(logger *logger.Logger, db *database.DB) *SessionRepository {
	return &SessionRepository{
		logger: logger.WithComponent("session_repository"),
		db:     db,
	}
}

// GetByToken - looks up a session by its cookie token
func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	session := &models.Session{}
	err := r.db.QueryRow(
		`SELECT token, user_id, role, expires_at, created_at FROM sessions WHERE token = $1`,
		token).
		Scan(&session.Token, &session.UserID, &session.Role, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session not found")
		}
		r.logger.Error("Failed to retrieve session", "error", err)
		return nil, fmt.Errorf("failed to retrieve session: %v", err)
	}

	return session, nil
}

// Delete - removes a session row (sign out)
func (r *SessionRepository) Delete(token string) error {
	if _, err := r.db.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		r.logger.Error("Failed to delete session", "error", err)
		return fmt.Errorf("failed to delete session: %v", err)
	}
	return nil
}
