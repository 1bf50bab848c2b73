package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/revalidate"
)

func newContentService(contentRepo *stubContentRepo) *ContentService {
	return NewContentService(
		contentRepo,
		&stubProductRepo{},
		&stubHeroRepo{},
		&stubQuizRepo{},
		revalidate.NewRegistry(),
		testLogger(),
	)
}

func TestUpdateSiteContentRequiresSession(t *testing.T) {
	svc := newContentService(&stubContentRepo{})

	result := svc.UpdateSiteContent(nil, map[string]string{"hero_headline": "x"})

	assert.Equal(t, ErrUnauthorized, result.Error)
}

func TestUpdateSiteContentWritesEveryKey(t *testing.T) {
	written := map[string]string{}
	repo := &stubContentRepo{
		updateFn: func(key, value string) error {
			written[key] = value
			return nil
		},
	}
	svc := newContentService(repo)

	result := svc.UpdateSiteContent(adminSession(), map[string]string{
		"hero_headline": "Fresh roasts",
		"contact_email": "hello@example.com",
	})

	require.False(t, result.IsError())
	assert.Equal(t, "Content updated successfully!", result.Success)
	assert.Len(t, written, len(models.SiteContentKeys))
	assert.Equal(t, "Fresh roasts", written["hero_headline"])
	// Keys absent from the submission blank the row
	assert.Equal(t, "", written["about_title"])
}

func TestUpdateSiteContentNamesFailingKey(t *testing.T) {
	repo := &stubContentRepo{
		updateFn: func(key, value string) error {
			if key == "about_p2" {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	svc := newContentService(repo)

	result := svc.UpdateSiteContent(adminSession(), map[string]string{})

	assert.Equal(t, "Failed to update about_p2.", result.Error)
}

func TestGetSectionsFallsBackToDefault(t *testing.T) {
	repo := &stubContentRepo{
		getFn: func(key string) (string, error) {
			return "", errors.New("site content with key homepage_sections not found")
		},
	}
	svc := newContentService(repo)

	sections, err := svc.GetSections()

	require.NoError(t, err)
	assert.Equal(t, DefaultSections(), sections)
}

func TestGetSectionsParsesStoredLayout(t *testing.T) {
	stored := []models.Section{
		{ID: "quiz", Name: "Product Quiz", Order: 1, Visible: true},
		{ID: "hero", Name: "Hero Carousel", Order: 2, Visible: false},
		{ID: "products", Name: "Featured Products", Order: 3, Visible: true},
	}
	encoded, err := json.Marshal(stored)
	require.NoError(t, err)

	repo := &stubContentRepo{
		getFn: func(key string) (string, error) { return string(encoded), nil },
	}
	svc := newContentService(repo)

	sections, err := svc.GetSections()

	require.NoError(t, err)
	assert.Equal(t, stored, sections)
}

func TestParseSectionsMalformedJSONFallsBack(t *testing.T) {
	assert.Equal(t, DefaultSections(), ParseSections("{not json"))
	assert.Equal(t, DefaultSections(), ParseSections("[]"))
}

func TestSaveSectionsRoundTrips(t *testing.T) {
	var saved string
	repo := &stubContentRepo{
		upsertFn: func(key, value string) error {
			assert.Equal(t, models.ContentKeyHomepageSections, key)
			saved = value
			return nil
		},
	}
	svc := newContentService(repo)

	layout := MoveSection(DefaultSections(), 2, "up")
	result := svc.SaveSections(adminSession(), layout)

	require.False(t, result.IsError())
	assert.Equal(t, layout, ParseSections(saved))
}

func TestMoveSectionSwapsAndRenumbers(t *testing.T) {
	moved := MoveSection(DefaultSections(), 1, "up")

	assert.Equal(t, "products", moved[0].ID)
	assert.Equal(t, "hero", moved[1].ID)
	assert.Equal(t, "quiz", moved[2].ID)
	for i, section := range moved {
		assert.Equal(t, i+1, section.Order)
	}
}

func TestMoveSectionIsSelfInverse(t *testing.T) {
	original := DefaultSections()

	down := MoveSection(original, 0, "down")
	restored := MoveSection(down, 1, "up")

	assert.Equal(t, original, restored)
}

func TestMoveSectionPastEitherEndIsNoOp(t *testing.T) {
	original := DefaultSections()

	assert.Equal(t, original, MoveSection(original, 0, "up"))
	assert.Equal(t, original, MoveSection(original, len(original)-1, "down"))
}

func TestToggleSectionFlipsVisibility(t *testing.T) {
	toggled := ToggleSection(DefaultSections(), "quiz")

	assert.False(t, toggled[2].Visible)
	assert.True(t, toggled[0].Visible)

	// Unknown id leaves the layout unchanged
	assert.Equal(t, DefaultSections(), ToggleSection(DefaultSections(), "missing"))
}

func TestVisibleSectionsFiltersAndSorts(t *testing.T) {
	sections := []models.Section{
		{ID: "quiz", Order: 3, Visible: true},
		{ID: "hero", Order: 1, Visible: false},
		{ID: "products", Order: 2, Visible: true},
	}

	visible := VisibleSections(sections)

	require.Len(t, visible, 2)
	assert.Equal(t, "products", visible[0].ID)
	assert.Equal(t, "quiz", visible[1].ID)
}

func TestHomepageComposesAllParts(t *testing.T) {
	svc := NewContentService(
		&stubContentRepo{
			getFn: func(key string) (string, error) { return "", errors.New("not found") },
		},
		&stubProductRepo{
			getAllFn: func(filter repositories.ProductFilter) ([]*models.Product, error) {
				if filter.Limit == 3 {
					return []*models.Product{{ID: "featured"}}, nil
				}
				return []*models.Product{{ID: "p1"}, {ID: "p2"}}, nil
			},
		},
		&stubHeroRepo{
			getActiveFn: func() ([]models.HeroSlide, error) {
				return []models.HeroSlide{{ID: "slide"}}, nil
			},
		},
		&stubQuizRepo{
			questionsFn: func() ([]models.QuizQuestion, error) {
				return []models.QuizQuestion{{ID: "q2", OrderIndex: 2}, {ID: "q1", OrderIndex: 1}}, nil
			},
		},
		revalidate.NewRegistry(),
		testLogger(),
	)

	view, err := svc.Homepage()

	require.NoError(t, err)
	assert.Len(t, view.AllProducts, 2)
	require.Len(t, view.FeaturedProducts, 1)
	assert.Equal(t, "featured", view.FeaturedProducts[0].ID)
	assert.Len(t, view.HeroSlides, 1)
	require.Len(t, view.Questions, 2)
	assert.Equal(t, "q1", view.Questions[0].ID)
	assert.Len(t, view.Sections, 3)
	assert.Zero(t, view.Generation)
}

func TestHomepageGenerationTracksInvalidation(t *testing.T) {
	pages := revalidate.NewRegistry()
	svc := NewContentService(
		&stubContentRepo{
			getFn: func(key string) (string, error) { return "", errors.New("not found") },
		},
		&stubProductRepo{},
		&stubHeroRepo{},
		&stubQuizRepo{},
		pages,
		testLogger(),
	)

	pages.Invalidate("/")
	pages.Invalidate("/")

	view, err := svc.Homepage()

	require.NoError(t, err)
	assert.Equal(t, uint64(2), view.Generation)
}
