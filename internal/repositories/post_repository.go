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

type PostRepositoryInterface interface {
	GetAll() ([]*models.Post, error)
	GetByID(id string) (*models.Post, error)
	Create(post *models.Post) (string, error)
	Update(id string, post *models.Post) error
	Delete(id string) error
	SearchByTitle(query string, limit int) ([]*models.Post, error)
}

type PostRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewPostRepository(logger *logger.Logger, db *database.DB) *PostRepository {
	return &PostRepository{
		logger: logger.WithComponent("post_repository"),
		db:     db,
	}
}

// GetAll - retrieves all blog posts, newest first
func (r *PostRepository) GetAll() ([]*models.Post, error) {
	rows, err := r.db.Query(
		`SELECT id, title, author, COALESCE(image_url, ''), content, created_at
         FROM posts ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error("Failed to query posts", "error", err)
		return nil, fmt.Errorf("failed to query posts: %v", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Author, &post.ImageURL,
			&post.Content, &post.CreatedAt); err != nil {
			r.logger.Error("Failed to scan post", "error", err)
			return nil, fmt.Errorf("failed to scan post: %v", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// GetByID - retrieves one blog post
func (r *PostRepository) GetByID(id string) (*models.Post, error) {
	post := &models.Post{}
	err := r.db.QueryRow(
		`SELECT id, title, author, COALESCE(image_url, ''), content, created_at
         FROM posts WHERE id = $1`, id).
		Scan(&post.ID, &post.Title, &post.Author, &post.ImageURL, &post.Content, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Post not found", "post_id", id)
			return nil, fmt.Errorf("post with id %s not found", id)
		}
		r.logger.Error("Failed to retrieve post", "error", err, "post_id", id)
		return nil, fmt.Errorf("failed to retrieve post: %v", err)
	}

	return post, nil
}

// Create - inserts a new blog post
func (r *PostRepository) Create(post *models.Post) (string, error) {
	if post == nil || post.Title == "" {
		return "", errors.New("post title cannot be empty")
	}

	id := uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO posts (id, title, author, image_url, content) VALUES ($1, $2, $3, NULLIF($4, ''), $5)`,
		id, post.Title, post.Author, post.ImageURL, post.Content)
	if err != nil {
		r.logger.Error("Failed to add post", "error", err, "title", post.Title)
		return "", fmt.Errorf("failed to add post: %v", err)
	}

	r.logger.Info("Added post", "post_id", id, "title", post.Title)
	return id, nil
}

// Update - updates an existing blog post
func (r *PostRepository) Update(id string, post *models.Post) error {
	if id == "" {
		return errors.New("post ID cannot be empty for updates")
	}

	result, err := r.db.Exec(
		`UPDATE posts SET title = $1, author = $2, image_url = NULLIF($3, ''), content = $4 WHERE id = $5`,
		post.Title, post.Author, post.ImageURL, post.Content, id)
	if err != nil {
		r.logger.Error("Failed to update post", "error", err, "post_id", id)
		return fmt.Errorf("failed to update post: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to update non-existent post", "post_id", id)
		return fmt.Errorf("post with id %s not found", id)
	}

	r.logger.Info("Updated post", "post_id", id, "title", post.Title)
	return nil
}

// Delete - removes a blog post by ID
func (r *PostRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete post", "error", err, "post_id", id)
		return fmt.Errorf("failed to delete post: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rowsAffected == 0 {
		r.logger.Warn("Attempted to delete non-existent post", "post_id", id)
		return fmt.Errorf("post with id %s not found", id)
	}

	r.logger.Info("Deleted post", "post_id", id)
	return nil
}

// SearchByTitle - case-insensitive substring match on post title,
// capped at limit. Only id and title are populated.
func (r *PostRepository) SearchByTitle(query string, limit int) ([]*models.Post, error) {
	r.logger.Debug("Searching posts by title", "query", query, "limit", limit)

	rows, err := r.db.Query(
		`SELECT id, title FROM posts WHERE title ILIKE $1 LIMIT $2`,
		"%"+query+"%", limit)
	if err != nil {
		r.logger.Error("Failed to search posts", "error", err, "query", query)
		return nil, fmt.Errorf("failed to search posts: %v", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(&post.ID, &post.Title); err != nil {
			return nil, fmt.Errorf("failed to scan post search row: %v", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}
