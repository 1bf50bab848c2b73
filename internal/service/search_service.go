package service

import (
	"golang.org/x/sync/errgroup"

	"github.com/FDead21/afc-web/internal/repositories"
	"github.com/FDead21/afc-web/models"
	"github.com/FDead21/afc-web/pkg/logger"
)

const searchResultLimit = 5

type SearchServiceInterface interface {
	Search(query string) ([]models.SearchResult, error)
}

// SearchService powers the header search box: a case-insensitive
// substring match over product names and post titles, capped at five
// hits per kind.
type SearchService struct {
	productRepo repositories.ProductRepositoryInterface
	postRepo    repositories.PostRepositoryInterface
	logger      *logger.Logger
}

func NewSearchService(productRepo repositories.ProductRepositoryInterface, postRepo repositories.PostRepositoryInterface, logger *logger.Logger) *SearchService {
	return &SearchService{
		productRepo: productRepo,
		postRepo:    postRepo,
		logger:      logger.WithComponent("search_service"),
	}
}

// Search runs both lookups concurrently and returns product hits before
// post hits. An empty query short-circuits to an empty slice without
// touching the store.
func (s *SearchService) Search(query string) ([]models.SearchResult, error) {
	if query == "" {
		return []models.SearchResult{}, nil
	}

	var (
		products []*models.Product
		posts    []*models.Post
	)

	var g errgroup.Group
	g.Go(func() error {
		found, err := s.productRepo.SearchByName(query, searchResultLimit)
		if err != nil {
			return err
		}
		products = found
		return nil
	})
	g.Go(func() error {
		found, err := s.postRepo.SearchByTitle(query, searchResultLimit)
		if err != nil {
			return err
		}
		posts = found
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Search failed", "error", err, "query", query)
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(products)+len(posts))
	for _, product := range products {
		results = append(results, models.SearchResult{Type: "Product", ID: product.ID, Title: product.Name})
	}
	for _, post := range posts {
		results = append(results, models.SearchResult{Type: "Blog Post", ID: post.ID, Title: post.Title})
	}

	return results, nil
}
