package repositories

import (
	"database/sql"
	"fmt"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

type ContentRepositoryInterface interface {
	GetAll() ([]models.SiteContent, error)
	Get(key string) (string, error)
	Update(key, value string) error
	Upsert(key, value string) error
}

// ContentRepository stores singleton site copy as key/value rows in
// the site_content table.
type ContentRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewContentRepository(logger *logger.Logger, db *database.DB) *ContentRepository {
	return &ContentRepository{
		logger: logger.WithComponent("content_repository"),
		db:     db,
	}
}

// GetAll - retrieves every content row
func (r *ContentRepository) GetAll() ([]models.SiteContent, error) {
	rows, err := r.db.Query(`SELECT content_key, content_value FROM site_content`)
	if err != nil {
		r.logger.Error("Failed to query site content", "error", err)
		return nil, fmt.Errorf("failed to query site content: %v", err)
	}
	defer rows.Close()

	entries := []models.SiteContent{}
	for rows.Next() {
		entry := models.SiteContent{}
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			r.logger.Error("Failed to scan site content", "error", err)
			return nil, fmt.Errorf("failed to scan site content: %v", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Get - retrieves one content value by key
func (r *ContentRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(
		`SELECT content_value FROM site_content WHERE content_key = $1`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("site content with key %s not found", key)
		}
		r.logger.Error("Failed to retrieve site content", "error", err, "content_key", key)
		return "", fmt.Errorf("failed to retrieve site content: %v", err)
	}

	return value, nil
}

// Update - updates an existing content row; the row must exist
func (r *ContentRepository) Update(key, value string) error {
	result, err := r.db.Exec(
		`UPDATE site_content SET content_value = $1 WHERE content_key = $2`, value, key)
	if err != nil {
		r.logger.Error("Failed to update site content", "error", err, "content_key", key)
		return fmt.Errorf("failed to update site content: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to update non-existent content key", "content_key", key)
		return fmt.Errorf("site content with key %s not found", key)
	}

	r.logger.Info("Updated site content", "content_key", key)
	return nil
}

// Upsert - update-if-exists else insert, in two steps. Keys like the
// homepage layout are created lazily on first save.
func (r *ContentRepository) Upsert(key, value string) error {
	result, err := r.db.Exec(
		`UPDATE site_content SET content_value = $1 WHERE content_key = $2`, value, key)
	if err != nil {
		r.logger.Error("Failed to upsert site content", "error", err, "content_key", key)
		return fmt.Errorf("failed to upsert site content: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected > 0 {
		r.logger.Info("Updated site content", "content_key", key)
		return nil
	}

	_, err = r.db.Exec(
		`INSERT INTO site_content (content_key, content_value) VALUES ($1, $2)`, key, value)
	if err != nil {
		r.logger.Error("Failed to insert site content", "error", err, "content_key", key)
		return fmt.Errorf("failed to insert site content: %v", err)
	}

	r.logger.Info("Inserted site content", "content_key", key)
	return nil
}
