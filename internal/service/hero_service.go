package service

import (
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

type HeroSlideForm struct {
	ImageURL     string `json:"image_url"`
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	CTAText      string `json:"cta_text"`
	CTAURL       string `json:"cta_url"`
	DisplayOrder int    `json:"display_order"`
}

type HeroServiceInterface interface {
	ListActive() ([]models.HeroSlide, error)
	ListAll(session *models.Session) ([]models.HeroSlide, error)
	CreateSlide(session *models.Session, form HeroSlideForm) Result
	ToggleSlide(session *models.Session, id string, active bool) Result
	DeleteSlide(session *models.Session, id string) Result
}

// HeroService manages the homepage hero carousel slides.
type HeroService struct {
	heroRepo repositories.HeroRepositoryInterface
	pages    *revalidate.Registry
	logger   *logger.Logger
}

func NewHeroService(heroRepo repositories.HeroRepositoryInterface, pages *revalidate.Registry, logger *logger.Logger) *HeroService {
	return &HeroService{
		heroRepo: heroRepo,
		pages:    pages,
		logger:   logger.WithComponent("hero_service"),
	}
}

// ListActive returns the active slides in display order
func (s *HeroService) ListActive() ([]models.HeroSlide, error) {
	return s.heroRepo.GetActive()
}

// ListAll returns every slide for the admin carousel manager
func (s *HeroService) ListAll(session *models.Session) ([]models.HeroSlide, error) {
	if session == nil {
		return nil, ErrSessionRequired
	}
	return s.heroRepo.GetAll()
}

// CreateSlide adds a slide; it starts active
func (s *HeroService) CreateSlide(session *models.Session, form HeroSlideForm) Result {
	if session == nil {
		return unauthorizedResult()
	}
	if form.ImageURL == "" {
		return errorResult("Slide image is required.")
	}

	id, err := s.heroRepo.Create(&models.HeroSlide{
		ImageURL:     form.ImageURL,
		Headline:     form.Headline,
		Subheadline:  form.Subheadline,
		CTAText:      form.CTAText,
		CTAURL:       form.CTAURL,
		DisplayOrder: form.DisplayOrder,
		IsActive:     true,
	})
	if err != nil {
		s.logger.Warn("Create hero slide failed", "error", err)
		return errorResult("Failed to create slide: " + err.Error())
	}

	s.pages.Invalidate("/", "/admin/hero")
	return Result{Success: "Slide created successfully!", ID: id}
}

// ToggleSlide activates or deactivates a slide
func (s *HeroService) ToggleSlide(session *models.Session, id string, active bool) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.heroRepo.SetActive(id, active); err != nil {
		s.logger.Warn("Toggle hero slide failed", "error", err, "slide_id", id)
		return errorResult("Failed to update slide: " + err.Error())
	}

	s.pages.Invalidate("/", "/admin/hero")
	return successResult("Slide updated.")
}

// DeleteSlide removes a slide
func (s *HeroService) DeleteSlide(session *models.Session, id string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	if err := s.heroRepo.Delete(id); err != nil {
		s.logger.Warn("Delete hero slide failed", "error", err, "slide_id", id)
		return errorResult("Failed to delete slide: " + err.Error())
	}

	s.pages.Invalidate("/", "/admin/hero")
	return successResult("Slide deleted.")
}
