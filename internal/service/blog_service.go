package service

import (
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

type PostForm struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
	Content  string `json:"content"`
}

type BlogServiceInterface interface {
	ListPosts() ([]*models.Post, error)
	GetPost(id string) (*models.Post, error)
	CreatePost(session *models.Session, form PostForm) Result
	UpdatePost(session *models.Session, id string, form PostForm) Result
	DeletePost(session *models.Session, id string) Result
}

// BlogService manages blog posts. Post content is trusted HTML from
// the admin rich-text editor and is stored verbatim.
type BlogService struct {
	postRepo repositories.PostRepositoryInterface
	pages    *revalidate.Registry
	logger   *logger.Logger
}

func NewBlogService(postRepo repositories.PostRepositoryInterface, pages *revalidate.Registry, logger *logger.Logger) *BlogService {
	return &BlogService{
		postRepo: postRepo,
		pages:    pages,
		logger:   logger.WithComponent("blog_service"),
	}
}

// ListPosts returns all posts newest first
func (s *BlogService) ListPosts() ([]*models.Post, error) {
	return s.postRepo.GetAll()
}

// GetPost returns a single post by id
func (s *BlogService) GetPost(id string) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// CreatePost creates a blog post
func (s *BlogService) CreatePost(session *models.Session, form PostForm) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if form.Title == "" || form.Content == "" {
		return errorResult("Title and content are required.")
	}

	id, err := s.postRepo.Create(&models.Post{
		Title:    form.Title,
		Author:   form.Author,
		ImageURL: form.ImageURL,
		Content:  form.Content,
	})
	if err != nil {
		s.logger.Warn("Create post failed", "error", err)
		return errorResult("Failed to create post: " + err.Error())
	}

	s.pages.Invalidate("/admin/blog", "/blog")
	return Result{Success: "Post created successfully!", ID: id}
}

// UpdatePost rewrites an existing post
func (s *BlogService) UpdatePost(session *models.Session, id string, form PostForm) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if form.Title == "" || form.Content == "" {
		return errorResult("Title and content are required.")
	}

	err := s.postRepo.Update(id, &models.Post{
		Title:    form.Title,
		Author:   form.Author,
		ImageURL: form.ImageURL,
		Content:  form.Content,
	})
	if err != nil {
		s.logger.Warn("Update post failed", "error", err, "post_id", id)
		return errorResult("Failed to update post: " + err.Error())
	}

	s.pages.Invalidate("/admin/blog", "/blog", "/blog/"+id)
	return successResult("Post updated successfully!")
}

// DeletePost removes a post
func (s *BlogService) DeletePost(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.postRepo.Delete(id); err != nil {
		s.logger.Warn("Delete post failed", "error", err, "post_id", id)
		return errorResult("Failed to delete post: " + err.Error())
	}

	s.pages.Invalidate("/admin/blog", "/blog")
	return successResult("Post deleted successfully.")
}
