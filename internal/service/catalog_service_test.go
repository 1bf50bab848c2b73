package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

func newCatalogService(
	productRepo *stubProductRepo,
	categoryRepo *stubCategoryRepo,
	ingredientRepo *stubIngredientRepo,
	reviewRepo *stubReviewRepo,
) *CatalogService {
	return NewCatalogService(productRepo, categoryRepo, ingredientRepo, reviewRepo, revalidate.NewRegistry(), testLogger())
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	reviews := []models.Review{{Rating: 5}, {Rating: 3}, {Rating: 4}}

	average, ok := AverageRating(reviews)

	assert.True(t, ok)
	assert.Equal(t, 4.0, average)

	average, ok = AverageRating([]models.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}})
	assert.True(t, ok)
	assert.Equal(t, 4.3, average)
}

func TestAverageRatingEmptyReviews(t *testing.T) {
	average, ok := AverageRating(nil)

	assert.False(t, ok)
	assert.Zero(t, average)
}

func TestGetProductDetailComposesApprovedReviewsOnly(t *testing.T) {
	svc := newCatalogService(
		&stubProductRepo{
			getByIDFn: func(id string) (*models.Product, error) {
				return &models.Product{ID: id, Name: "Mocha"}, nil
			},
		},
		&stubCategoryRepo{},
		&stubIngredientRepo{
			byProductFn: func(productID string) ([]models.Ingredient, error) {
				return []models.Ingredient{{ID: "i1", Name: "Cocoa"}}, nil
			},
		},
		&stubReviewRepo{
			// The detail read asks for approved reviews only; the
			// repository applies the filter
			approvedFn: func(productID string) ([]models.Review, error) {
				return []models.Review{{Rating: 5, IsApproved: true}, {Rating: 2, IsApproved: true}}, nil
			},
		},
	)

	detail, err := svc.GetProductDetail("p1")

	require.NoError(t, err)
	assert.Equal(t, "Mocha", detail.Name)
	assert.Len(t, detail.Ingredients, 1)
	assert.True(t, detail.HasRating)
	assert.Equal(t, 3.5, detail.AverageRating)
}

func TestGetProductDetailPropagatesError(t *testing.T) {
	svc := newCatalogService(
		&stubProductRepo{
			getByIDFn: func(id string) (*models.Product, error) { return nil, errStore },
		},
		&stubCategoryRepo{},
		&stubIngredientRepo{},
		&stubReviewRepo{},
	)

	_, err := svc.GetProductDetail("p1")

	assert.ErrorIs(t, err, errStore)
}

func TestGetProductEditFormComposes(t *testing.T) {
	svc := newCatalogService(
		&stubProductRepo{
			getByIDFn: func(id string) (*models.Product, error) {
				return &models.Product{ID: id}, nil
			},
			ingredientsFn: func(productID string) ([]string, error) {
				return []string{"i1", "i2"}, nil
			},
			imagesFn: func(productID string) ([]models.ProductImage, error) {
				return []models.ProductImage{{ID: "img1"}}, nil
			},
		},
		&stubCategoryRepo{
			getAllFn: func() ([]models.Category, error) {
				return []models.Category{{ID: "c1"}}, nil
			},
		},
		&stubIngredientRepo{
			getAllFn: func() ([]models.Ingredient, error) {
				return []models.Ingredient{{ID: "i1"}, {ID: "i2"}, {ID: "i3"}}, nil
			},
		},
		&stubReviewRepo{},
	)

	form, err := svc.GetProductEditForm("p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", form.Product.ID)
	assert.Len(t, form.Categories, 1)
	assert.Len(t, form.Ingredients, 3)
	assert.Equal(t, []string{"i1", "i2"}, form.IngredientIDs)
	assert.Len(t, form.Images, 1)
}

func TestFeaturedProductsCapsLimit(t *testing.T) {
	var gotFilter repositories.ProductFilter
	svc := newCatalogService(
		&stubProductRepo{
			getAllFn: func(filter repositories.ProductFilter) ([]*models.Product, error) {
				gotFilter = filter
				return nil, nil
			},
		},
		&stubCategoryRepo{},
		&stubIngredientRepo{},
		&stubReviewRepo{},
	)

	_, err := svc.FeaturedProducts(3)

	require.NoError(t, err)
	assert.Equal(t, 3, gotFilter.Limit)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := newCatalogService(&stubProductRepo{}, &stubCategoryRepo{}, &stubIngredientRepo{}, &stubReviewRepo{})

	assert.Equal(t, ErrUnauthorized, svc.CreateCategory(nil, "Espresso").Error)
	assert.Equal(t, "Category name is required.", svc.CreateCategory(adminSession(), "").Error)

	result := svc.CreateCategory(adminSession(), "Espresso")
	require.False(t, result.IsError())
	assert.Equal(t, "category-id", result.ID)
}

func TestCreateIngredientValidation(t *testing.T) {
	svc := newCatalogService(&stubProductRepo{}, &stubCategoryRepo{}, &stubIngredientRepo{}, &stubReviewRepo{})

	assert.Equal(t, "Ingredient name is required.", svc.CreateIngredient(adminSession(), IngredientForm{}).Error)

	result := svc.CreateIngredient(adminSession(), IngredientForm{Name: "Oat milk"})
	require.False(t, result.IsError())
	assert.Equal(t, "ingredient-id", result.ID)
}
