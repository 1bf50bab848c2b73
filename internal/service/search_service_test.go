package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/models"
)

func TestSearchEmptyQuerySkipsStore(t *testing.T) {
	productCalled, postCalled := false, false
	svc := NewSearchService(
		&stubProductRepo{
			searchFn: func(query string, limit int) ([]*models.Product, error) {
				productCalled = true
				return nil, nil
			},
		},
		&stubPostRepo{
			searchFn: func(query string, limit int) ([]*models.Post, error) {
				postCalled = true
				return nil, nil
			},
		},
		testLogger(),
	)

	results, err := svc.Search("")

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
	assert.False(t, productCalled)
	assert.False(t, postCalled)
}

func TestSearchLabelsAndOrdersResults(t *testing.T) {
	svc := NewSearchService(
		&stubProductRepo{
			searchFn: func(query string, limit int) ([]*models.Product, error) {
				assert.Equal(t, "latte", query)
				assert.Equal(t, 5, limit)
				return []*models.Product{{ID: "p1", Name: "Iced Latte"}}, nil
			},
		},
		&stubPostRepo{
			searchFn: func(query string, limit int) ([]*models.Post, error) {
				return []*models.Post{{ID: "b1", Title: "Latte art basics"}}, nil
			},
		},
		testLogger(),
	)

	results, err := svc.Search("latte")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, models.SearchResult{Type: "Product", ID: "p1", Title: "Iced Latte"}, results[0])
	assert.Equal(t, models.SearchResult{Type: "Blog Post", ID: "b1", Title: "Latte art basics"}, results[1])
}

func TestSearchPropagatesStoreError(t *testing.T) {
	svc := NewSearchService(
		&stubProductRepo{
			searchFn: func(query string, limit int) ([]*models.Product, error) {
				return nil, errStore
			},
		},
		&stubPostRepo{},
		testLogger(),
	)

	_, err := svc.Search("latte")

	assert.ErrorIs(t, err, errStore)
}
