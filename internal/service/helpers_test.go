package service

import (
	"errors"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
)

// Function-field fakes for the repository interfaces. Unset fields
// return zero values, so each test only wires what it exercises.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

func adminSession() *models.Session {
	return &models.Session{
		Token:  "test-token",
		UserID: "user-1",
		Role:   models.RoleAdmin,
	}
}

var errStore = errors.New("store unavailable")

type stubProductRepo struct {
	getAllFn      func(filter repositories.ProductFilter) ([]*models.Product, error)
	getByIDFn     func(id string) (*models.Product, error)
	createFn      func(product *models.Product, ingredientIDs []string) (string, error)
	updateFn      func(id string, product *models.Product, ingredientIDs []string) error
	deleteFn      func(id string) error
	searchFn      func(query string, limit int) ([]*models.Product, error)
	ingredientsFn func(productID string) ([]string, error)
	imagesFn      func(productID string) ([]models.ProductImage, error)
	addImageFn    func(productID, imageURL string) (string, error)
	deleteImageFn func(imageID string) error
}

func (s *stubProductRepo) GetAll(filter repositories.ProductFilter) ([]*models.Product, error) {
	if s.getAllFn != nil {
		return s.getAllFn(filter)
	}
	return nil, nil
}

func (s *stubProductRepo) GetByID(id string) (*models.Product, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(id)
	}
	return &models.Product{ID: id}, nil
}

func (s *stubProductRepo) Create(product *models.Product, ingredientIDs []string) (string, error) {
	if s.createFn != nil {
		return s.createFn(product, ingredientIDs)
	}
	return "new-id", nil
}

func (s *stubProductRepo) Update(id string, product *models.Product, ingredientIDs []string) error {
	if s.updateFn != nil {
		return s.updateFn(id, product, ingredientIDs)
	}
	return nil
}

func (s *stubProductRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

func (s *stubProductRepo) SearchByName(query string, limit int) ([]*models.Product, error) {
	if s.searchFn != nil {
		return s.searchFn(query, limit)
	}
	return nil, nil
}

func (s *stubProductRepo) GetIngredientIDs(productID string) ([]string, error) {
	if s.ingredientsFn != nil {
		return s.ingredientsFn(productID)
	}
	return nil, nil
}

func (s *stubProductRepo) GetImages(productID string) ([]models.ProductImage, error) {
	if s.imagesFn != nil {
		return s.imagesFn(productID)
	}
	return nil, nil
}

func (s *stubProductRepo) AddImage(productID, imageURL string) (string, error) {
	if s.addImageFn != nil {
		return s.addImageFn(productID, imageURL)
	}
	return "image-id", nil
}

func (s *stubProductRepo) DeleteImage(imageID string) error {
	if s.deleteImageFn != nil {
		return s.deleteImageFn(imageID)
	}
	return nil
}

type stubPostRepo struct {
	getAllFn  func() ([]*models.Post, error)
	getByIDFn func(id string) (*models.Post, error)
	createFn  func(post *models.Post) (string, error)
	updateFn  func(id string, post *models.Post) error
	deleteFn  func(id string) error
	searchFn  func(query string, limit int) ([]*models.Post, error)
}

func (s *stubPostRepo) GetAll() ([]*models.Post, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}

func (s *stubPostRepo) GetByID(id string) (*models.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(id)
	}
	return &models.Post{ID: id}, nil
}

func (s *stubPostRepo) Create(post *models.Post) (string, error) {
	if s.createFn != nil {
		return s.createFn(post)
	}
	return "post-id", nil
}

func (s *stubPostRepo) Update(id string, post *models.Post) error {
	if s.updateFn != nil {
		return s.updateFn(id, post)
	}
	return nil
}

func (s *stubPostRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

func (s *stubPostRepo) SearchByTitle(query string, limit int) ([]*models.Post, error) {
	if s.searchFn != nil {
		return s.searchFn(query, limit)
	}
	return nil, nil
}

type stubReviewRepo struct {
	approvedFn func(productID string) ([]models.Review, error)
	getAllFn   func() ([]models.Review, error)
	createFn   func(review *models.Review) (string, error)
	approveFn  func(id string) error
	deleteFn   func(id string) error
}

func (s *stubReviewRepo) GetApprovedByProduct(productID string) ([]models.Review, error) {
	if s.approvedFn != nil {
		return s.approvedFn(productID)
	}
	return nil, nil
}

func (s *stubReviewRepo) GetAll() ([]models.Review, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}

func (s *stubReviewRepo) Create(review *models.Review) (string, error) {
	if s.createFn != nil {
		return s.createFn(review)
	}
	return "review-id", nil
}

func (s *stubReviewRepo) Approve(id string) error {
	if s.approveFn != nil {
		return s.approveFn(id)
	}
	return nil
}

func (s *stubReviewRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubContentRepo struct {
	getAllFn func() ([]models.SiteContent, error)
	getFn    func(key string) (string, error)
	updateFn func(key, value string) error
	upsertFn func(key, value string) error
}

func (s *stubContentRepo) GetAll() ([]models.SiteContent, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}

func (s *stubContentRepo) Get(key string) (string, error) {
	if s.getFn != nil {
		return s.getFn(key)
	}
	return "", nil
}

func (s *stubContentRepo) Update(key, value string) error {
	if s.updateFn != nil {
		return s.updateFn(key, value)
	}
	return nil
}

func (s *stubContentRepo) Upsert(key, value string) error {
	if s.upsertFn != nil {
		return s.upsertFn(key, value)
	}
	return nil
}

type stubCategoryRepo struct {
	getAllFn func() ([]models.Category, error)
	createFn func(name string) (string, error)
	deleteFn func(id string) error
}

func (s *stubCategoryRepo) GetAll() ([]models.Category, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}

func (s *stubCategoryRepo) Create(name string) (string, error) {
	if s.createFn != nil {
		return s.createFn(name)
	}
	return "category-id", nil
}

func (s *stubCategoryRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubIngredientRepo struct {
	getAllFn    func() ([]models.Ingredient, error)
	byProductFn func(productID string) ([]models.Ingredient, error)
	createFn    func(ingredient *models.Ingredient) (string, error)
	deleteFn    func(id string) error
}

func (s *stubIngredientRepo) GetAll() ([]models.Ingredient, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}

func (s *stubIngredientRepo) GetByProduct(productID string) ([]models.Ingredient, error) {
	if s.byProductFn != nil {
		return s.byProductFn(productID)
	}
	return nil, nil
}

func (s *stubIngredientRepo) Create(ingredient *models.Ingredient) (string, error) {
	if s.createFn != nil {
		return s.createFn(ingredient)
	}
	return "ingredient-id", nil
}

func (s *stubIngredientRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubHeroRepo struct {
	getActiveFn func() ([]models.HeroSlide, error)
	getAllFn    func() ([]models.HeroSlide, error)
	createFn    func(slide *models.HeroSlide) (string, error)
	setActiveFn func(id string, active bool) error
	deleteFn    func(id string) error
}

func (s *stubHeroRepo) GetActive() ([]models.HeroSlide, error) {
	if s.getActiveFn != nil {
		return s.getActiveFn()
	}
	return nil, nil
}

func (s *stubHeroRepo) GetAll() ([]models.HeroSlide, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}

func (s *stubHeroRepo) Create(slide *models.HeroSlide) (string, error) {
	if s.createFn != nil {
		return s.createFn(slide)
	}
	return "slide-id", nil
}

func (s *stubHeroRepo) SetActive(id string, active bool) error {
	if s.setActiveFn != nil {
		return s.setActiveFn(id, active)
	}
	return nil
}

func (s *stubHeroRepo) Delete(id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	return nil
}

type stubQuizRepo struct {
	questionsFn      func() ([]models.QuizQuestion, error)
	createQuestionFn func(question string, orderIndex int) (string, error)
	createAnswerFn   func(questionID, text string, productTags []string) (string, error)
	deleteQuestionFn func(id string) error
	deleteAnswerFn   func(id string) error
}

func (s *stubQuizRepo) GetQuestions() ([]models.QuizQuestion, error) {
	if s.questionsFn != nil {
		return s.questionsFn()
	}
	return nil, nil
}

func (s *stubQuizRepo) CreateQuestion(question string, orderIndex int) (string, error) {
	if s.createQuestionFn != nil {
		return s.createQuestionFn(question, orderIndex)
	}
	return "question-id", nil
}

func (s *stubQuizRepo) CreateAnswer(questionID, text string, productTags []string) (string, error) {
	if s.createAnswerFn != nil {
		return s.createAnswerFn(questionID, text, productTags)
	}
	return "answer-id", nil
}

func (s *stubQuizRepo) DeleteQuestion(id string) error {
	if s.deleteQuestionFn != nil {
		return s.deleteQuestionFn(id)
	}
	return nil
}

func (s *stubQuizRepo) DeleteAnswer(id string) error {
	if s.deleteAnswerFn != nil {
		return s.deleteAnswerFn(id)
	}
	return nil
}

type stubMessageRepo struct {
	createFn func(message *models.Message) (string, error)
	getAllFn func() ([]models.Message, error)
}

func (s *stubMessageRepo) Create(message *models.Message) (string, error) {
	if s.createFn != nil {
		return s.createFn(message)
	}
	return "message-id", nil
}

func (s *stubMessageRepo) GetAll() ([]models.Message, error) {
	if s.getAllFn != nil {
		return s.getAllFn()
	}
	return nil, nil
}
