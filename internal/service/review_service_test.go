package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

func newReviewService(repo *stubReviewRepo) (*ReviewService, *revalidate.Registry) {
	pages := revalidate.NewRegistry()
	return NewReviewService(repo, pages, testLogger()), pages
}

func TestSubmitReviewRequiresCoreFields(t *testing.T) {
	svc, _ := newReviewService(&stubReviewRepo{})

	for _, form := range []ReviewForm{
		{ReviewerName: "Ana", Rating: 5},
		{ProductID: "p1", Rating: 5},
		{ProductID: "p1", ReviewerName: "Ana"},
	} {
		result := svc.SubmitReview(form)
		assert.Equal(t, "Please fill out all required fields.", result.Error)
	}
}

func TestSubmitReviewStoresUnapproved(t *testing.T) {
	var stored *models.Review
	svc, _ := newReviewService(&stubReviewRepo{
		createFn: func(review *models.Review) (string, error) {
			stored = review
			return "r1", nil
		},
	})

	result := svc.SubmitReview(ReviewForm{ProductID: "p1", ReviewerName: "Ana", Rating: 4, Comment: "great"})

	require.False(t, result.IsError())
	require.NotNil(t, stored)
	assert.False(t, stored.IsApproved)
	assert.Equal(t, 4, stored.Rating)
	assert.Equal(t, "Thank you for your review!", result.Success)
}

func TestSubmitReviewInvalidatesProductPage(t *testing.T) {
	svc, pages := newReviewService(&stubReviewRepo{})

	result := svc.SubmitReview(ReviewForm{ProductID: "p1", ReviewerName: "Ana", Rating: 4})

	require.False(t, result.IsError())
	assert.Equal(t, uint64(1), pages.Generation("/products/p1"))
}

func TestSubmitReviewPassesThroughStoreError(t *testing.T) {
	svc, pages := newReviewService(&stubReviewRepo{
		createFn: func(review *models.Review) (string, error) {
			return "", errStore
		},
	})

	result := svc.SubmitReview(ReviewForm{ProductID: "p1", ReviewerName: "Ana", Rating: 4})

	assert.Equal(t, "Submission failed: "+errStore.Error(), result.Error)
	assert.Zero(t, pages.Generation("/products/p1"))
}

func TestSubmitReviewAcceptsOutOfRangeRating(t *testing.T) {
	// Only a zero rating is rejected; range enforcement is the form's job
	svc, _ := newReviewService(&stubReviewRepo{})

	result := svc.SubmitReview(ReviewForm{ProductID: "p1", ReviewerName: "Ana", Rating: 9})

	assert.False(t, result.IsError())
}

func TestApproveReviewRequiresSession(t *testing.T) {
	svc, _ := newReviewService(&stubReviewRepo{})

	result := svc.ApproveReview(nil, "r1")

	assert.Equal(t, ErrUnauthorized, result.Error)
}

func TestApproveReviewMarksVisible(t *testing.T) {
	var approved string
	svc, _ := newReviewService(&stubReviewRepo{
		approveFn: func(id string) error {
			approved = id
			return nil
		},
	})

	result := svc.ApproveReview(adminSession(), "r1")

	require.False(t, result.IsError())
	assert.Equal(t, "r1", approved)
}

func TestListReviewsRequiresSession(t *testing.T) {
	svc, _ := newReviewService(&stubReviewRepo{})

	_, err := svc.ListReviews(nil)

	assert.ErrorIs(t, err, ErrSessionRequired)
}

func TestDeleteReviewPassesThroughError(t *testing.T) {
	svc, _ := newReviewService(&stubReviewRepo{
		deleteFn: func(id string) error { return errStore },
	})

	result := svc.DeleteReview(adminSession(), "r1")

	assert.Equal(t, "Failed to delete review: "+errStore.Error(), result.Error)
}
