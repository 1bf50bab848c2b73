package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	Price         decimal.Decimal `json:"price" db:"price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	CategoryID    string          `json:"category_id,omitempty" db:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	Tags          []string        `json:"tags" db:"tags"`
	Images        []ProductImage  `json:"product_images"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type ProductImage struct {
	ID        string    `json:"id" db:"id"`
	ProductID string    `json:"product_id" db:"product_id"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ProductDetail is the composed detail-page view: the product plus its
// approved reviews and linked ingredients.
type ProductDetail struct {
	Product
	Ingredients   []Ingredient `json:"ingredients"`
	Reviews       []Review     `json:"reviews"`
	AverageRating float64      `json:"average_rating"`
	HasRating     bool         `json:"has_rating"`
}

type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Ingredient struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProductEditForm bundles everything the admin edit screen needs in one
// response so the handler can fetch it with a single composed read.
type ProductEditForm struct {
	Product       *Product       `json:"product"`
	Categories    []Category     `json:"categories"`
	Ingredients   []Ingredient   `json:"ingredients"`
	IngredientIDs []string       `json:"ingredient_ids"`
	Images        []ProductImage `json:"images"`
}
