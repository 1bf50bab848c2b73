package service

import (
	"encoding/json"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/FDead21/afc-web/internal/quiz"
	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

// HomepageView is everything the homepage renders: the full catalog for
// the quiz scorer, the newest three products for the featured strip,
// active hero slides, quiz questions and the visible section layout in
// display order. Generation is the homepage's invalidation counter;
// clients compare it against a cached view to decide on a refetch.
type HomepageView struct {
	AllProducts      []*models.Product     `json:"all_products"`
	FeaturedProducts []*models.Product     `json:"featured_products"`
	HeroSlides       []models.HeroSlide    `json:"hero_slides"`
	Questions        []models.QuizQuestion `json:"questions"`
	Sections         []models.Section      `json:"sections"`
	Generation       uint64                `json:"generation"`
}

type ContentServiceInterface interface {
	SiteCopy() (map[string]string, error)
	UpdateSiteContent(session *models.Session, values map[string]string) Result
	GetSections() ([]models.Section, error)
	SaveSections(session *models.Session, sections []models.Section) Result
	Homepage() (*HomepageView, error)
}

// ContentService manages singleton site copy and the homepage section
// layout, and composes the homepage view.
type ContentService struct {
	contentRepo repositories.ContentRepositoryInterface
	productRepo repositories.ProductRepositoryInterface
	heroRepo    repositories.HeroRepositoryInterface
	quizRepo    repositories.QuizRepositoryInterface
	pages       *revalidate.Registry
	logger      *logger.Logger
}

func NewContentService(
	contentRepo repositories.ContentRepositoryInterface,
	productRepo repositories.ProductRepositoryInterface,
	heroRepo repositories.HeroRepositoryInterface,
	quizRepo repositories.QuizRepositoryInterface,
	pages *revalidate.Registry,
	logger *logger.Logger,
) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
		productRepo: productRepo,
		heroRepo:    heroRepo,
		quizRepo:    quizRepo,
		pages:       pages,
		logger:      logger.WithComponent("content_service"),
	}
}

// SiteCopy returns all copy rows keyed by content key
func (s *ContentService) SiteCopy() (map[string]string, error) {
	rows, err := s.contentRepo.GetAll()
	if err != nil {
		return nil, err
	}

	copyMap := make(map[string]string, len(rows))
	for _, row := range rows {
		copyMap[row.Key] = row.Value
	}
	return copyMap, nil
}

// UpdateSiteContent writes every editable copy key from the submitted
// values, missing keys included (they blank the row). The first key
// that fails aborts the loop and names the key; earlier writes stay
// applied.
func (s *ContentService) UpdateSiteContent(session *models.Session, values map[string]string) Result {
	if session == nil {
		return unauthorizedResult()
	}

	for _, key := range models.SiteContentKeys {
		if err := s.contentRepo.Update(key, values[key]); err != nil {
			s.logger.Warn("Update site content failed", "error", err, "key", key)
			return errorResult("Failed to update " + key + ".")
		}
	}

	s.pages.Invalidate("/", "/about", "/contact")
	return successResult("Content updated successfully!")
}

// GetSections returns the stored homepage layout, or the default layout
// when none has been saved yet or the stored JSON does not parse.
func (s *ContentService) GetSections() ([]models.Section, error) {
	value, err := s.contentRepo.Get(models.ContentKeyHomepageSections)
	if err != nil || value == "" {
		return DefaultSections(), nil
	}
	return ParseSections(value), nil
}

// SaveSections persists the full section layout as JSON
func (s *ContentService) SaveSections(session *models.Session, sections []models.Section) Result {
	if session == nil {
		return unauthorizedResult()
	}

	encoded, err := json.Marshal(sections)
	if err != nil {
		return errorResult("Failed to save layout: " + err.Error())
	}

	if err := s.contentRepo.Upsert(models.ContentKeyHomepageSections, string(encoded)); err != nil {
		s.logger.Warn("Save homepage sections failed", "error", err)
		return errorResult("Failed to save layout: " + err.Error())
	}

	s.pages.Invalidate("/")
	return successResult("Layout saved! Refresh the homepage to see changes.")
}

// Homepage composes the homepage view; the five reads run concurrently.
func (s *ContentService) Homepage() (*HomepageView, error) {
	view := &HomepageView{}

	var g errgroup.Group
	g.Go(func() error {
		products, err := s.productRepo.GetAll(repositories.ProductFilter{})
		if err != nil {
			return err
		}
		view.AllProducts = products
		return nil
	})
	g.Go(func() error {
		featured, err := s.productRepo.GetAll(repositories.ProductFilter{Limit: 3})
		if err != nil {
			return err
		}
		view.FeaturedProducts = featured
		return nil
	})
	g.Go(func() error {
		slides, err := s.heroRepo.GetActive()
		if err != nil {
			return err
		}
		view.HeroSlides = slides
		return nil
	})
	g.Go(func() error {
		questions, err := s.quizRepo.GetQuestions()
		if err != nil {
			return err
		}
		view.Questions = quiz.SortQuestions(questions)
		return nil
	})
	g.Go(func() error {
		sections, err := s.GetSections()
		if err != nil {
			return err
		}
		view.Sections = VisibleSections(sections)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Failed to compose homepage", "error", err)
		return nil, err
	}

	view.Generation = s.pages.Generation("/")
	return view, nil
}

// DefaultSections is the layout used before any has been saved.
func DefaultSections() []models.Section {
	return []models.Section{
		{ID: "hero", Name: "Hero Carousel", Order: 1, Visible: true},
		{ID: "products", Name: "Featured Products", Order: 2, Visible: true},
		{ID: "quiz", Name: "Product Quiz", Order: 3, Visible: true},
	}
}

// ParseSections decodes a stored layout, falling back to the default
// layout on malformed JSON.
func ParseSections(value string) []models.Section {
	var sections []models.Section
	if err := json.Unmarshal([]byte(value), &sections); err != nil || len(sections) == 0 {
		return DefaultSections()
	}
	return sections
}

// MoveSection swaps the section at index with its neighbor in the given
// direction ("up" or "down") and renumbers all orders 1-based. Moves
// past either end are no-ops.
func MoveSection(sections []models.Section, index int, direction string) []models.Section {
	moved := append([]models.Section(nil), sections...)

	target := index + 1
	if direction == "up" {
		target = index - 1
	}
	if index < 0 || index >= len(moved) || target < 0 || target >= len(moved) {
		return moved
	}

	moved[index], moved[target] = moved[target], moved[index]
	for i := range moved {
		moved[i].Order = i + 1
	}
	return moved
}

// ToggleSection flips the visibility of the section with the given id;
// unknown ids leave the layout unchanged.
func ToggleSection(sections []models.Section, id string) []models.Section {
	toggled := append([]models.Section(nil), sections...)
	for i := range toggled {
		if toggled[i].ID == id {
			toggled[i].Visible = !toggled[i].Visible
		}
	}
	return toggled
}

// VisibleSections filters to visible sections sorted by order ascending.
func VisibleSections(sections []models.Section) []models.Section {
	visible := make([]models.Section, 0, len(sections))
	for _, section := range sections {
		if section.Visible {
			visible = append(visible, section)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})
	return visible
}
