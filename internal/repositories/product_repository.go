package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

// ProductFilter narrows catalog listings. Zero value means no filter.
type ProductFilter struct {
	Search     string // case-insensitive substring on name
	CategoryID string // equality on category_id
	Limit      int    // 0 means no limit
}

type ProductRepositoryInterface interface {
	GetAll(filter ProductFilter) ([]*models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product, ingredientIDs []string) (string, error)
	Update(id string, product *models.Product, ingredientIDs []string) error
	Delete(id string) error
	SearchByName(query string, limit int) ([]*models.Product, error)
	GetIngredientIDs(productID string) ([]string, error)
	GetImages(productID string) ([]models.ProductImage, error)
	AddImage(productID, imageURL string) (string, error)
	DeleteImage(imageID string) error
}

type ProductRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewProductRepository(logger *logger.Logger, db *database.DB) *ProductRepository {
	return &ProductRepository{
		logger: logger.WithComponent("product_repository"),
		db:     db,
	}
}

const productSelectColumns = `
        SELECT p.id, p.name, p.description, p.price, p.stock_quantity,
               COALESCE(p.category_id::text, ''), COALESCE(c.name, ''), p.tags, p.created_at,
               COALESCE(
                   json_agg(
                       json_build_object('id', pi.id, 'image_url', pi.image_url)
                       ORDER BY pi.created_at
                   ) FILTER (WHERE pi.id IS NOT NULL), '[]'::json
               ) as images
        FROM products p
        LEFT JOIN categories c ON p.category_id = c.id
        LEFT JOIN product_images pi ON pi.product_id = p.id
`

// GetAll - retrieves products matching the filter, newest first
func (r *ProductRepository) GetAll(filter ProductFilter) ([]*models.Product, error) {
	r.logger.Debug("Retrieving products from database", "search", filter.Search, "category_id", filter.CategoryID)

	query := productSelectColumns
	args := []interface{}{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" WHERE p.name ILIKE $%d", len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		if len(args) == 1 {
			query += fmt.Sprintf(" WHERE p.category_id = $%d", len(args))
		} else {
			query += fmt.Sprintf(" AND p.category_id = $%d", len(args))
		}
	}

	query += `
        GROUP BY p.id, c.name
        ORDER BY p.created_at DESC
    `
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Failed to query products", "error", err)
		return nil, fmt.Errorf("failed to query products: %v", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := r.scanProduct(rows)
		if err != nil {
			r.logger.Error("Failed to scan product", "error", err)
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating product rows", "error", err)
		return nil, fmt.Errorf("error iterating product rows: %v", err)
	}

	r.logger.Info("Retrieved products", "count", len(products))
	return products, nil
}

// GetByID - retrieves a product by ID with category name and images
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	r.logger.Debug("Retrieving product from database", "product_id", id)

	query := productSelectColumns + `
        WHERE p.id = $1
        GROUP BY p.id, c.name
    `

	rows, err := r.db.Query(query, id)
	if err != nil {
		r.logger.Error("Failed to query product", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to query product: %v", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to retrieve product: %v", err)
		}
		r.logger.Warn("Product not found", "product_id", id)
		return nil, fmt.Errorf("product with id %s not found", id)
	}

	product, err := r.scanProduct(rows)
	if err != nil {
		r.logger.Error("Failed to scan product", "error", err, "product_id", id)
		return nil, err
	}

	return product, nil
}

// Create - inserts a product and its ingredient links in one transaction
func (r *ProductRepository) Create(product *models.Product, ingredientIDs []string) (string, error) {
	r.logger.Debug("Adding new product", "product_name", product.Name)

	if err := r.validateProduct(product); err != nil {
		r.logger.Error("Failed to validate product", "error", err, "product_name", product.Name)
		return "", err
	}

	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Failed to begin transaction", "error", err)
		return "", fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	id := product.ID
	if id == "" {
		id = uuid.NewString()
	}

	query := `
        INSERT INTO products (id, name, description, price, stock_quantity, category_id, tags)
        VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7)
    `

	_, err = tx.Exec(query, id, product.Name, product.Description, product.Price,
		product.StockQuantity, product.CategoryID, pq.Array(product.Tags))
	if err != nil {
		r.logger.Error("Failed to add product", "error", err, "product_id", id)
		return "", fmt.Errorf("failed to add product: %v", err)
	}

	if err := r.insertIngredientLinks(tx, id, ingredientIDs); err != nil {
		r.logger.Error("Failed to link product ingredients", "error", err, "product_id", id)
		return "", fmt.Errorf("failed to link product ingredients: %v", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit transaction", "error", err)
		return "", fmt.Errorf("failed to commit transaction: %v", err)
	}

	r.logger.Info("Added new product", "product_id", id, "name", product.Name)
	return id, nil
}

// Update - updates a product and replaces its ingredient links
func (r *ProductRepository) Update(id string, product *models.Product, ingredientIDs []string) error {
	r.logger.Debug("Updating product in database", "product_id", id)

	if id == "" {
		return errors.New("product ID cannot be empty for updates")
	}
	if err := r.validateProduct(product); err != nil {
		r.logger.Error("Failed to validate product", "error", err, "product_id", id)
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		r.logger.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := `
        UPDATE products
        SET name = $1, description = $2, price = $3, stock_quantity = $4,
            category_id = NULLIF($5, '')::uuid, tags = $6
        WHERE id = $7
    `

	result, err := tx.Exec(query, product.Name, product.Description, product.Price,
		product.StockQuantity, product.CategoryID, pq.Array(product.Tags), id)
	if err != nil {
		r.logger.Error("Failed to update product", "error", err, "product_id", id)
		return fmt.Errorf("failed to update product: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get rows affected", "error", err, "product_id", id)
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to update non-existent product", "product_id", id)
		return fmt.Errorf("product with id %s not found", id)
	}

	if err := r.deleteIngredientLinks(tx, id); err != nil {
		r.logger.Error("Failed to delete existing ingredient links", "error", err, "product_id", id)
		return fmt.Errorf("failed to delete existing ingredient links: %v", err)
	}

	if err := r.insertIngredientLinks(tx, id, ingredientIDs); err != nil {
		r.logger.Error("Failed to update product ingredients", "error", err, "product_id", id)
		return fmt.Errorf("failed to update product ingredients: %v", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit transaction", "error", err, "product_id", id)
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	r.logger.Info("Updated product", "product_id", id, "name", product.Name)
	return nil
}

// Delete - removes a product by ID. Image and ingredient link rows go
// with it via ON DELETE CASCADE at the store level.
func (r *ProductRepository) Delete(id string) error {
	r.logger.Debug("Deleting product from database", "product_id", id)

	result, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete product", "error", err, "product_id", id)
		return fmt.Errorf("failed to delete product: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get rows affected", "error", err, "product_id", id)
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent product", "product_id", id)
		return fmt.Errorf("product with id %s not found", id)
	}

	r.logger.Info("Deleted product", "product_id", id)
	return nil
}

// SearchByName - case-insensitive substring match on product name,
// capped at limit. Only id and name are populated.
func (r *ProductRepository) SearchByName(query string, limit int) ([]*models.Product, error) {
	r.logger.Debug("Searching products by name", "query", query, "limit", limit)

	rows, err := r.db.Query(
		`SELECT id, name FROM products WHERE name ILIKE $1 LIMIT $2`,
		"%"+query+"%", limit)
	if err != nil {
		r.logger.Error("Failed to search products", "error", err, "query", query)
		return nil, fmt.Errorf("failed to search products: %v", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name); err != nil {
			r.logger.Error("Failed to scan product search row", "error", err)
			return nil, fmt.Errorf("failed to scan product search row: %v", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// GetIngredientIDs - ids of ingredients linked to the product
func (r *ProductRepository) GetIngredientIDs(productID string) ([]string, error) {
	rows, err := r.db.Query(
		`SELECT ingredient_id FROM product_ingredients WHERE product_id = $1`, productID)
	if err != nil {
		r.logger.Error("Failed to query product ingredient links", "error", err, "product_id", productID)
		return nil, fmt.Errorf("failed to query product ingredient links: %v", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient link: %v", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// GetImages - ordered image rows for a product
func (r *ProductRepository) GetImages(productID string) ([]models.ProductImage, error) {
	rows, err := r.db.Query(
		`SELECT id, product_id, image_url, created_at FROM product_images
         WHERE product_id = $1 ORDER BY created_at`, productID)
	if err != nil {
		r.logger.Error("Failed to query product images", "error", err, "product_id", productID)
		return nil, fmt.Errorf("failed to query product images: %v", err)
	}
	defer rows.Close()

	images := []models.ProductImage{}
	for rows.Next() {
		image := models.ProductImage{}
		if err := rows.Scan(&image.ID, &image.ProductID, &image.ImageURL, &image.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %v", err)
		}
		images = append(images, image)
	}

	return images, rows.Err()
}

// AddImage - inserts one product image row
func (r *ProductRepository) AddImage(productID, imageURL string) (string, error) {
	id := uuid.NewString()

	_, err := r.db.Exec(
		`INSERT INTO product_images (id, product_id, image_url) VALUES ($1, $2, $3)`,
		id, productID, imageURL)
	if err != nil {
		r.logger.Error("Failed to add product image", "error", err, "product_id", productID)
		return "", fmt.Errorf("failed to add product image: %v", err)
	}

	r.logger.Info("Added product image", "product_id", productID, "image_id", id)
	return id, nil
}

// DeleteImage - removes one product image row by its own id
func (r *ProductRepository) DeleteImage(imageID string) error {
	result, err := r.db.Exec(`DELETE FROM product_images WHERE id = $1`, imageID)
	if err != nil {
		r.logger.Error("Failed to delete product image", "error", err, "image_id", imageID)
		return fmt.Errorf("failed to delete product image: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("product image with id %s not found", imageID)
	}

	r.logger.Info("Deleted product image", "image_id", imageID)
	return nil
}

func (r *ProductRepository) scanProduct(rows *sql.Rows) (*models.Product, error) {
	product := &models.Product{}
	imagesJSON := ""

	err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price,
		&product.StockQuantity, &product.CategoryID, &product.CategoryName,
		pq.Array(&product.Tags), &product.CreatedAt, &imagesJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %v", err)
	}

	if err := json.Unmarshal([]byte(imagesJSON), &product.Images); err != nil {
		return nil, fmt.Errorf("invalid JSON format for product images: %v", err)
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
	}

	return product, nil
}

func (r *ProductRepository) insertIngredientLinks(tx *sql.Tx, productID string, ingredientIDs []string) error {
	if len(ingredientIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO product_ingredients (product_id, ingredient_id)
		VALUES ($1, $2)
	`

	for _, ingredientID := range ingredientIDs {
		if _, err := tx.Exec(query, productID, ingredientID); err != nil {
			return fmt.Errorf("failed to insert ingredient link %s: %v", ingredientID, err)
		}
	}

	return nil
}

func (r *ProductRepository) deleteIngredientLinks(tx *sql.Tx, productID string) error {
	if _, err := tx.Exec(`DELETE FROM product_ingredients WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("failed to delete ingredient links: %v", err)
	}
	return nil
}

func (r *ProductRepository) validateProduct(product *models.Product) error {
	if product == nil {
		return errors.New("product cannot be nil")
	}
	if product.Name == "" {
		return errors.New("product name cannot be empty")
	}
	if product.Price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	if product.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}
