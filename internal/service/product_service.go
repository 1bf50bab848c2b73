package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

// ProductForm carries the admin product form fields, string-shaped the
// way the form posts them. Coercion happens here, not in the handler.
type ProductForm struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Price         string `json:"price" validate:"required"`
	StockQuantity string `json:"stock_quantity"`
	CategoryID    string `json:"category_id"`
	Tags          string `json:"tags"`           // comma separated
	IngredientIDs string `json:"ingredient_ids"` // JSON array of ingredient ids
}

type ProductServiceInterface interface {
	CreateProduct(session *models.Session, form ProductForm) Result
	UpdateProduct(session *models.Session, id string, form ProductForm) Result
	DeleteProduct(session *models.Session, id string) Result
	DeleteProductImage(session *models.Session, imageID string) Result
}

type ProductService struct {
	productRepo repositories.ProductRepositoryInterface
	pages       *revalidate.Registry
	validate    *validator.Validate
	logger      *logger.Logger
}

func NewProductService(productRepo repositories.ProductRepositoryInterface, pages *revalidate.Registry, logger *logger.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		pages:       pages,
		validate:    validator.New(),
		logger:      logger.WithComponent("product_service"),
	}
}

// CreateProduct creates a product with its ingredient links
func (s *ProductService) CreateProduct(session *models.Session, form ProductForm) Result {
	if session == nil {
		s.logger.Warn("Create product rejected: no session")
		return unauthorizedResult()
	}

	if err := s.validate.Struct(form); err != nil {
		s.logger.Warn("Create product failed: invalid form", "error", err)
		return errorResult("Product name and price are required.")
	}

	product, ingredientIDs, result := s.coerceForm(form)
	if result.IsError() {
		return result
	}

	id, err := s.productRepo.Create(product, ingredientIDs)
	if err != nil {
		s.logger.Warn("Create product failed", "error", err)
		return errorResult(err.Error())
	}

	s.pages.Invalidate("/admin", "/admin/products")

	s.logger.Info("Created product", "product_id", id, "name", product.Name)
	return Result{Success: "Product created successfully.", ID: id}
}

// UpdateProduct updates a product and replaces its ingredient links
func (s *ProductService) UpdateProduct(session *models.Session, id string, form ProductForm) Result {
	if session == nil {
		s.logger.Warn("Update product rejected: no session", "product_id", id)
		return unauthorizedResult()
	}

	if id == "" {
		return errorResult("Product ID is required.")
	}
	if err := s.validate.Struct(form); err != nil {
		s.logger.Warn("Update product failed: invalid form", "error", err, "product_id", id)
		return errorResult("Product name and price are required.")
	}

	product, ingredientIDs, result := s.coerceForm(form)
	if result.IsError() {
		return result
	}

	if err := s.productRepo.Update(id, product, ingredientIDs); err != nil {
		s.logger.Warn("Update product failed", "error", err, "product_id", id)
		return errorResult(err.Error())
	}

	s.pages.Invalidate("/admin", "/admin/products", "/admin/edit/"+id, "/products/"+id)

	s.logger.Info("Updated product", "product_id", id)
	return successResult("Product updated successfully")
}

// DeleteProduct removes a product; image and ingredient link rows
// cascade at the store
func (s *ProductService) DeleteProduct(session *models.Session, id string) Result {
	if session == nil {
		s.logger.Warn("Delete product rejected: no session", "product_id", id)
		return unauthorizedResult()
	}

	if err := s.productRepo.Delete(id); err != nil {
		s.logger.Warn("Delete product failed", "error", err, "product_id", id)
		return errorResult(err.Error())
	}

	s.pages.Invalidate("/admin", "/admin/products")

	s.logger.Info("Deleted product", "product_id", id)
	return successResult("Product deleted successfully")
}

// DeleteProductImage removes a single image record. The stored object
// itself is left behind; only the database row goes away.
func (s *ProductService) DeleteProductImage(session *models.Session, imageID string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.productRepo.DeleteImage(imageID); err != nil {
		s.logger.Warn("Delete product image failed", "error", err, "image_id", imageID)
		return errorResult("Failed to delete image.")
	}

	return successResult("Image deleted.")
}

func (s *ProductService) coerceForm(form ProductForm) (*models.Product, []string, Result) {
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return nil, nil, errorResult("Invalid price.")
	}

	stock := 0
	if form.StockQuantity != "" {
		stock, err = strconv.Atoi(form.StockQuantity)
		if err != nil {
			return nil, nil, errorResult("Invalid stock quantity.")
		}
	}

	ingredientIDs := []string{}
	if form.IngredientIDs != "" {
		if err := json.Unmarshal([]byte(form.IngredientIDs), &ingredientIDs); err != nil {
			return nil, nil, errorResult("Invalid ingredient list.")
		}
	}

	product := &models.Product{
		Name:          form.Name,
		Description:   form.Description,
		Price:         price,
		StockQuantity: stock,
		CategoryID:    form.CategoryID,
		Tags:          ParseTags(form.Tags),
	}

	return product, ingredientIDs, Result{}
}

// ParseTags splits a comma separated tag string, trims whitespace and
// drops empties. Deduplication is left to the form side.
func ParseTags(tags string) []string {
	parsed := []string{}
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			parsed = append(parsed, tag)
		}
	}
	return parsed
}
