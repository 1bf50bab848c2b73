package service

import (
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

type ReviewForm struct {
	ProductID    string `json:"product_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

type ReviewServiceInterface interface {
	SubmitReview(form ReviewForm) Result
	ListReviews(session *models.Session) ([]models.Review, error)
	ApproveReview(session *models.Session, id string) Result
	DeleteReview(session *models.Session, id string) Result
}

// ReviewService handles public review submission and the admin
// moderation queue. Submissions land unapproved and stay invisible on
// product pages until approved.
type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	pages      *revalidate.Registry
	logger     *logger.Logger
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, pages *revalidate.Registry, logger *logger.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		pages:      pages,
		logger:     logger.WithComponent("review_service"),
	}
}

// SubmitReview accepts a public review. Product id, reviewer name and a
// non-zero rating are required; the rating range itself is not checked
// here, the form is the only gate.
func (s *ReviewService) SubmitReview(form ReviewForm) Result {
	if form.ProductID == "" || form.ReviewerName == "" || form.Rating == 0 {
		return errorResult("Please fill out all required fields.")
	}

	_, err := s.reviewRepo.Create(&models.Review{
		ProductID:    form.ProductID,
		ReviewerName: form.ReviewerName,
		Rating:       form.Rating,
		Comment:      form.Comment,
	})
	if err != nil {
		s.logger.Warn("Submit review failed", "error", err, "product_id", form.ProductID)
		return errorResult("Submission failed: " + err.Error())
	}

	s.pages.Invalidate("/products/" + form.ProductID)
	return successResult("Thank you for your review!")
}

// ListReviews returns every review, approved or not, for moderation
func (s *ReviewService) ListReviews(session *models.Session) ([]models.Review, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}
	return s.reviewRepo.GetAll()
}

// ApproveReview marks a review visible on its product page
func (s *ReviewService) ApproveReview(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.reviewRepo.Approve(id); err != nil {
		s.logger.Warn("Approve review failed", "error", err, "review_id", id)
		return errorResult("Failed to approve review: " + err.Error())
	}

	s.pages.Invalidate("/admin/reviews")
	return successResult("Review approved.")
}

// DeleteReview removes a review outright
func (s *ReviewService) DeleteReview(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.reviewRepo.Delete(id); err != nil {
		s.logger.Warn("Delete review failed", "error", err, "review_id", id)
		return errorResult("Failed to delete review: " + err.Error())
	}

	s.pages.Invalidate("/admin/reviews")
	return successResult("Review deleted.")
}
