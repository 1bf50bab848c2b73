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

type ReviewRepositoryInterface interface {
	GetApprovedByProduct(productID string) ([]models.Review, error)
	GetAll() ([]models.Review, error)
	Create(review *models.Review) (string, error)
	Approve(id string) error
	Delete(id string) error
}

type ReviewRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewReviewRepository(logger *logger.Logger, db *database.DB) *ReviewRepository {
	return &ReviewRepository{
		logger: logger.WithComponent("review_repository"),
		db:     db,
	}
}

// GetApprovedByProduct - approved reviews for one product, newest first.
// Only approved reviews are ever shown publicly.
func (r *ReviewRepository) GetApprovedByProduct(productID string) ([]models.Review, error) {
	rows, err := r.db.Query(
		`SELECT id, product_id, reviewer_name, rating, comment, is_approved, created_at
         FROM reviews
         WHERE product_id = $1 AND is_approved = true
         ORDER BY created_at DESC`, productID)
	if err != nil {
		r.logger.Error("Failed to query reviews", "error", err, "product_id", productID)
		return nil, fmt.Errorf("failed to query reviews: %v", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// GetAll - every review regardless of approval, newest first (admin view)
func (r *ReviewRepository) GetAll() ([]models.Review, error) {
	rows, err := r.db.Query(
		`SELECT id, product_id, reviewer_name, rating, comment, is_approved, created_at
         FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Failed to query reviews", "error", err)
		return nil, fmt.Errorf("failed to query reviews: %v", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// Create - inserts a review; is_approved defaults to false at the store
func (r *ReviewRepository) Create(review *models.Review) (string, error) {
	if review == nil {
		return "", errors.New("review cannot be nil")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO reviews (id, product_id, reviewer_name, rating, comment)
         VALUES ($1, $2, $3, $4, $5)`,
		id, review.ProductID, review.ReviewerName, review.Rating, review.Comment)
	if err != nil {
		r.logger.Error("Failed to add review", "error", err, "product_id", review.ProductID)
		return "", fmt.Errorf("failed to add review: %v", err)
	}

	r.logger.Info("Added review", "review_id", id, "product_id", review.ProductID)
	return id, nil
}

// Approve - flips is_approved to true
func (r *ReviewRepository) Approve(id string) error {
	result, err := r.db.Exec(`UPDATE reviews SET is_approved = true WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to approve review", "error", err, "review_id", id)
		return fmt.Errorf("failed to approve review: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to approve non-existent review", "review_id", id)
		return fmt.Errorf("review with id %s not found", id)
	}

	r.logger.Info("Approved review", "review_id", id)
	return nil
}

// Delete - removes a review by ID
func (r *ReviewRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete review", "error", err, "review_id", id)
		return fmt.Errorf("failed to delete review: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent review", "review_id", id)
		return fmt.Errorf("review with id %s not found", id)
	}

	r.logger.Info("Deleted review", "review_id", id)
	return nil
}

func scanReviews(rows *sql.Rows) ([]models.Review, error) {
	reviews := []models.Review{}
	for rows.Next() {
		review := models.Review{}
		if err := rows.Scan(&review.ID, &review.ProductID, &review.ReviewerName,
			&review.Rating, &review.Comment, &review.IsApproved, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %v", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
