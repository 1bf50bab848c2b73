package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

type HeroRepositoryInterface interface {
	GetActive() ([]models.HeroSlide, error)
	GetAll() ([]models.HeroSlide, error)
	Create(slide *models.HeroSlide) (string, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

type HeroRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewHeroRepository(logger *logger.Logger, db *database.DB) *HeroRepository {
	return &HeroRepository{
		logger: logger.WithComponent("hero_repository"),
		db:     db,
	}
}

const heroSelectColumns = `
        SELECT id, image_url, COALESCE(headline, ''), COALESCE(subheadline, ''),
               COALESCE(cta_text, ''), COALESCE(cta_url, ''), display_order, is_active, created_at
        FROM hero_images
`

// GetActive - active carousel slides in display order
func (r *HeroRepository) GetActive() ([]models.HeroSlide, error) {
	rows, err := r.db.Query(heroSelectColumns + ` WHERE is_active = true ORDER BY display_order`)
	if err != nil {
		r.logger.Error("Failed to query hero slides", "error", err)
		return nil, fmt.Errorf("failed to query hero slides: %v", err)
	}
	defer rows.Close()

	return scanHeroSlides(rows)
}

// GetAll - every slide regardless of active flag, in display order
func (r *HeroRepository) GetAll() ([]models.HeroSlide, error) {
	rows, err := r.db.Query(heroSelectColumns + ` ORDER BY display_order`)
	if err != nil {
		r.logger.Error("Failed to query hero slides", "error", err)
		return nil, fmt.Errorf("failed to query hero slides: %v", err)
	}
	defer rows.Close()

	return scanHeroSlides(rows)
}

// Create - inserts a new slide
func (r *HeroRepository) Create(slide *models.HeroSlide) (string, error) {
	if slide == nil || slide.ImageURL == "" {
		return "", errors.New("hero slide image URL cannot be empty")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO hero_images (id, image_url, headline, subheadline, cta_text, cta_url, display_order, is_active)
         VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8)`,
		id, slide.ImageURL, slide.Headline, slide.Subheadline,
		slide.CTAText, slide.CTAURL, slide.DisplayOrder, slide.IsActive)
	if err != nil {
		r.logger.Error("Failed to add hero slide", "error", err)
		return "", fmt.Errorf("failed to add hero slide: %v", err)
	}

	r.logger.Info("Added hero slide", "slide_id", id)
	return id, nil
}

// SetActive - toggles a slide's visibility flag
func (r *HeroRepository) SetActive(id string, active bool) error {
	result, err := r.db.Exec(`UPDATE hero_images SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		r.logger.Error("Failed to update hero slide", "error", err, "slide_id", id)
		return fmt.Errorf("failed to update hero slide: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to update non-existent hero slide", "slide_id", id)
		return fmt.Errorf("hero slide with id %s not found", id)
	}

	r.logger.Info("Updated hero slide", "slide_id", id, "is_active", active)
	return nil
}

// Delete - removes a slide by ID
func (r *HeroRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM hero_images WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete hero slide", "error", err, "slide_id", id)
		return fmt.Errorf("failed to delete hero slide: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent hero slide", "slide_id", id)
		return fmt.Errorf("hero slide with id %s not found", id)
	}

	r.logger.Info("Deleted hero slide", "slide_id", id)
	return nil
}

func scanHeroSlides(rows *sql.Rows) ([]models.HeroSlide, error) {
	slides := []models.HeroSlide{}
	for rows.Next() {
		slide := models.HeroSlide{}
		if err := rows.Scan(&slide.ID, &slide.ImageURL, &slide.Headline, &slide.Subheadline,
			&slide.CTAText, &slide.CTAURL, &slide.DisplayOrder, &slide.IsActive, &slide.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hero slide: %v", err)
		}
		slides = append(slides, slide)
	}
	return slides, rows.Err()
}
