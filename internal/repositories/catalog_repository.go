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

type CategoryRepositoryInterface interface {
	GetAll() ([]models.Category, error)
	Create(name string) (string, error)
	Delete(id string) error
}

type CategoryRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewCategoryRepository(logger *logger.Logger, db *database.DB) *CategoryRepository {
	return &CategoryRepository{
		logger: logger.WithComponent("category_repository"),
		db:     db,
	}
}

// GetAll - retrieves all categories ordered by name
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		r.logger.Error("Failed to query categories", "error", err)
		return nil, fmt.Errorf("failed to query categories: %v", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		category := models.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			r.logger.Error("Failed to scan category", "error", err)
			return nil, fmt.Errorf("failed to scan category: %v", err)
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

// Create - inserts a new category
func (r *CategoryRepository) Create(name string) (string, error) {
	if name == "" {
		return "", errors.New("category name cannot be empty")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(`INSERT INTO categories (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		r.logger.Error("Failed to add category", "error", err, "name", name)
		return "", fmt.Errorf("failed to add category: %v", err)
	}

	r.logger.Info("Added category", "category_id", id, "name", name)
	return id, nil
}

// Delete - removes a category by ID. Products referencing it keep their
// reference; orphan handling is left to the store's FK behavior.
func (r *CategoryRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete category", "error", err, "category_id", id)
		return fmt.Errorf("failed to delete category: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent category", "category_id", id)
		return fmt.Errorf("category with id %s not found", id)
	}

	r.logger.Info("Deleted category", "category_id", id)
	return nil
}

type IngredientRepositoryInterface interface {
	GetAll() ([]models.Ingredient, error)
	GetByProduct(productID string) ([]models.Ingredient, error)
	Create(ingredient *models.Ingredient) (string, error)
	Delete(id string) error
}

type IngredientRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewIngredientRepository(logger *logger.Logger, db *database.DB) *IngredientRepository {
	return &IngredientRepository{
		logger: logger.WithComponent("ingredient_repository"),
		db:     db,
	}
}

// GetAll - retrieves all ingredients ordered by name
func (r *IngredientRepository) GetAll() ([]models.Ingredient, error) {
	rows, err := r.db.Query(
		`SELECT id, name, description, COALESCE(image_url, ''), created_at
         FROM ingredients ORDER BY name`)
	if err != nil {
		r.logger.Error("Failed to query ingredients", "error", err)
		return nil, fmt.Errorf("failed to query ingredients: %v", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// GetByProduct - ingredients linked to a product via product_ingredients
func (r *IngredientRepository) GetByProduct(productID string) ([]models.Ingredient, error) {
	rows, err := r.db.Query(
		`SELECT i.id, i.name, i.description, COALESCE(i.image_url, ''), i.created_at
         FROM ingredients i
         JOIN product_ingredients pi ON pi.ingredient_id = i.id
         WHERE pi.product_id = $1
         ORDER BY i.name`, productID)
	if err != nil {
		r.logger.Error("Failed to query product ingredients", "error", err, "product_id", productID)
		return nil, fmt.Errorf("failed to query product ingredients: %v", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// Create - inserts a new ingredient
func (r *IngredientRepository) Create(ingredient *models.Ingredient) (string, error) {
	if ingredient == nil || ingredient.Name == "" {
		return "", errors.New("ingredient name cannot be empty")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO ingredients (id, name, description, image_url) VALUES ($1, $2, $3, NULLIF($4, ''))`,
		id, ingredient.Name, ingredient.Description, ingredient.ImageURL)
	if err != nil {
		r.logger.Error("Failed to add ingredient", "error", err, "name", ingredient.Name)
		return "", fmt.Errorf("failed to add ingredient: %v", err)
	}

	r.logger.Info("Added ingredient", "ingredient_id", id, "name", ingredient.Name)
	return id, nil
}

// Delete - removes an ingredient by ID
func (r *IngredientRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete ingredient", "error", err, "ingredient_id", id)
		return fmt.Errorf("failed to delete ingredient: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent ingredient", "ingredient_id", id)
		return fmt.Errorf("ingredient with id %s not found", id)
	}

	r.logger.Info("Deleted ingredient", "ingredient_id", id)
	return nil
}

func scanIngredients(rows *sql.Rows) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	for rows.Next() {
		ingredient := models.Ingredient{}
		if err := rows.Scan(&ingredient.ID, &ingredient.Name, &ingredient.Description,
			&ingredient.ImageURL, &ingredient.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %v", err)
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, rows.Err()
}
