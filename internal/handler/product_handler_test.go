package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/internal/service"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
)

var errStore = errors.New("store unavailable")

func handlerTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

// stubCatalogService stubs the catalog reads the product handler uses.
type stubCatalogService struct {
	listFn     func(search, categoryID string) ([]*models.Product, error)
	detailFn   func(id string) (*models.ProductDetail, error)
	editFormFn func(id string) (*models.ProductEditForm, error)
}

func (s *stubCatalogService) ListProducts(search, categoryID string) ([]*models.Product, error) {
	if s.listFn != nil {
		return s.listFn(search, categoryID)
	}
	return nil, nil
}

func (s *stubCatalogService) FeaturedProducts(limit int) ([]*models.Product, error) {
	return nil, nil
}

func (s *stubCatalogService) GetProductDetail(id string) (*models.ProductDetail, error) {
	if s.detailFn != nil {
		return s.detailFn(id)
	}
	return &models.ProductDetail{}, nil
}

func (s *stubCatalogService) GetProductEditForm(id string) (*models.ProductEditForm, error) {
	if s.editFormFn != nil {
		return s.editFormFn(id)
	}
	return &models.ProductEditForm{}, nil
}

func (s *stubCatalogService) ListCategories() ([]models.Category, error) { return nil, nil }

func (s *stubCatalogService) ListIngredients() ([]models.Ingredient, error) { return nil, nil }

func (s *stubCatalogService) CreateCategory(session *models.Session, name string) service.Result {
	return service.Result{}
}

func (s *stubCatalogService) DeleteCategory(session *models.Session, id string) service.Result {
	return service.Result{}
}

func (s *stubCatalogService) CreateIngredient(session *models.Session, form service.IngredientForm) service.Result {
	return service.Result{}
}

func (s *stubCatalogService) DeleteIngredient(session *models.Session, id string) service.Result {
	return service.Result{}
}

func newProductHandler(catalog *stubCatalogService) *ProductHandler {
	return NewProductHandler(nil, catalog, nil, handlerTestLogger())
}

func TestListProductsReturnsStoreErrorAs500(t *testing.T) {
	h := newProductHandler(&stubCatalogService{
		listFn: func(search, categoryID string) ([]*models.Product, error) {
			return nil, errStore
		},
	})

	rec := httptest.NewRecorder()
	h.ListProducts(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), errStore.Error())
}

func TestListProductsReturnsCatalog(t *testing.T) {
	h := newProductHandler(&stubCatalogService{
		listFn: func(search, categoryID string) ([]*models.Product, error) {
			return []*models.Product{{ID: "p1", Name: "Latte"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.ListProducts(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Latte")
}

func TestGetProductMissingRowIs404(t *testing.T) {
	h := newProductHandler(&stubCatalogService{
		detailFn: func(id string) (*models.ProductDetail, error) {
			return nil, fmt.Errorf("product with id %s not found", id)
		},
	})

	rec := httptest.NewRecorder()
	h.GetProduct(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestGetProductStoreErrorIs500WithMessage(t *testing.T) {
	h := newProductHandler(&stubCatalogService{
		detailFn: func(id string) (*models.ProductDetail, error) {
			return nil, errStore
		},
	})

	rec := httptest.NewRecorder()
	h.GetProduct(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), errStore.Error())
}
