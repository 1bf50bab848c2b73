package service

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

type IngredientForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CatalogServiceInterface interface {
	ListProducts(search, categoryID string) ([]*models.Product, error)
	FeaturedProducts(limit int) ([]*models.Product, error)
	GetProductDetail(id string) (*models.ProductDetail, error)
	GetProductEditForm(id string) (*models.ProductEditForm, error)
	ListCategories() ([]models.Category, error)
	ListIngredients() ([]models.Ingredient, error)
	CreateCategory(session *models.Session, name string) Result
	DeleteCategory(session *models.Session, id string) Result
	CreateIngredient(session *models.Session, form IngredientForm) Result
	DeleteIngredient(session *models.Session, id string) Result
}

// CatalogService serves the read-side compositions for listing and
// detail pages, plus the small taxonomy mutators (categories and
// ingredients).
type CatalogService struct {
	productRepo    repositories.ProductRepositoryInterface
	categoryRepo   repositories.CategoryRepositoryInterface
	ingredientRepo repositories.IngredientRepositoryInterface
	reviewRepo     repositories.ReviewRepositoryInterface
	pages          *revalidate.Registry
	logger         *logger.Logger
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	ingredientRepo repositories.IngredientRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface,
	pages *revalidate.Registry,
	logger *logger.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		ingredientRepo: ingredientRepo,
		reviewRepo:     reviewRepo,
		pages:          pages,
		logger:         logger.WithComponent("catalog_service"),
	}
}

// ListProducts returns products newest first, optionally narrowed by a
// case-insensitive name substring and a category id. No pagination.
func (s *CatalogService) ListProducts(search, categoryID string) ([]*models.Product, error) {
	return s.productRepo.GetAll(repositories.ProductFilter{
		Search:     search,
		CategoryID: categoryID,
	})
}

// FeaturedProducts returns the newest products capped at limit
func (s *CatalogService) FeaturedProducts(limit int) ([]*models.Product, error) {
	return s.productRepo.GetAll(repositories.ProductFilter{Limit: limit})
}

// GetProductDetail composes the detail page: the product, its approved
// reviews and linked ingredients are fetched concurrently. The average
// rating is the arithmetic mean of approved review ratings, rounded to
// one decimal; zero reviews leaves HasRating false.
func (s *CatalogService) GetProductDetail(id string) (*models.ProductDetail, error) {
	detail := &models.ProductDetail{}

	var g errgroup.Group
	g.Go(func() error {
		product, err := s.productRepo.GetByID(id)
		if err != nil {
			return err
		}
		detail.Product = *product
		return nil
	})
	g.Go(func() error {
		reviews, err := s.reviewRepo.GetApprovedByProduct(id)
		if err != nil {
			return err
		}
		detail.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		ingredients, err := s.ingredientRepo.GetByProduct(id)
		if err != nil {
			return err
		}
		detail.Ingredients = ingredients
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Failed to compose product detail", "error", err, "product_id", id)
		return nil, err
	}

	detail.AverageRating, detail.HasRating = AverageRating(detail.Reviews)

	return detail, nil
}

// GetProductEditForm composes everything the admin edit screen needs;
// the five independent reads are issued together and awaited jointly.
func (s *CatalogService) GetProductEditForm(id string) (*models.ProductEditForm, error) {
	form := &models.ProductEditForm{}

	var g errgroup.Group
	g.Go(func() error {
		product, err := s.productRepo.GetByID(id)
		if err != nil {
			return err
		}
		form.Product = product
		return nil
	})
	g.Go(func() error {
		categories, err := s.categoryRepo.GetAll()
		if err != nil {
			return err
		}
		form.Categories = categories
		return nil
	})
	g.Go(func() error {
		ingredients, err := s.ingredientRepo.GetAll()
		if err != nil {
			return err
		}
		form.Ingredients = ingredients
		return nil
	})
	g.Go(func() error {
		ids, err := s.productRepo.GetIngredientIDs(id)
		if err != nil {
			return err
		}
		form.IngredientIDs = ids
		return nil
	})
	g.Go(func() error {
		images, err := s.productRepo.GetImages(id)
		if err != nil {
			return err
		}
		form.Images = images
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Failed to compose product edit form", "error", err, "product_id", id)
		return nil, err
	}

	return form, nil
}

// ListCategories returns all categories ordered by name
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// ListIngredients returns all ingredients ordered by name
func (s *CatalogService) ListIngredients() ([]models.Ingredient, error) {
	return s.ingredientRepo.GetAll()
}

// CreateCategory creates a category
func (s *CatalogService) CreateCategory(session *models.Session, name string) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if name == "" {
		return errorResult("Category name is required.")
	}

	id, err := s.categoryRepo.Create(name)
	if err != nil {
		s.logger.Warn("Create category failed", "error", err)
		return errorResult("Failed to create category: " + err.Error())
	}

	s.pages.Invalidate("/admin/categories")
	return Result{Success: "Category created successfully!", ID: id}
}

// DeleteCategory removes a category. Products referencing it are left
// alone; orphaned references are the store's concern.
func (s *CatalogService) DeleteCategory(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.categoryRepo.Delete(id); err != nil {
		s.logger.Warn("Delete category failed", "error", err, "category_id", id)
		return errorResult("Failed to delete category: " + err.Error())
	}

	s.pages.Invalidate("/admin/categories")
	return successResult("Category deleted successfully.")
}

// CreateIngredient creates an ingredient
func (s *CatalogService) CreateIngredient(session *models.Session, form IngredientForm) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if form.Name == "" {
		return errorResult("Ingredient name is required.")
	}

	id, err := s.ingredientRepo.Create(&models.Ingredient{
		Name:        form.Name,
		Description: form.Description,
		ImageURL:    form.ImageURL,
	})
	if err != nil {
		s.logger.Warn("Create ingredient failed", "error", err)
		return errorResult("Failed to create ingredient: " + err.Error())
	}

	s.pages.Invalidate("/admin/ingredients")
	return Result{Success: "Ingredient created successfully!", ID: id}
}

// DeleteIngredient removes an ingredient
func (s *CatalogService) DeleteIngredient(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.ingredientRepo.Delete(id); err != nil {
		s.logger.Warn("Delete ingredient failed", "error", err, "ingredient_id", id)
		return errorResult("Failed to delete ingredient: " + err.Error())
	}

	s.pages.Invalidate("/admin/ingredients")
	return successResult("Ingredient deleted successfully.")
}

// AverageRating computes the arithmetic mean of the given review
// ratings rounded to one decimal place. The boolean is false when
// there are no reviews, so callers can skip the rating display.
func AverageRating(reviews []models.Review) (float64, bool) {
	if len(reviews) == 0 {
		return 0, false
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}

	average := float64(total) / float64(len(reviews))
	return math.Round(average*10) / 10, true
}
