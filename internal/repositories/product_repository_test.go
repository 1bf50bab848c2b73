package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

func newMockProductRepo(t *testing.T) (*ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	return NewProductRepository(log, database.NewFromDB(db, log)), mock
}

func TestProductDeleteRemovesRow(t *testing.T) {
	repo, mock := newMockProductRepo(t)

	mock.ExpectExec(`DELETE FROM products WHERE id`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete("p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductDeleteMissingRowFails(t *testing.T) {
	repo, mock := newMockProductRepo(t)

	mock.ExpectExec(`DELETE FROM products WHERE id`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete("ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "product with id ghost not found")
}

func TestProductSearchByNameWrapsPattern(t *testing.T) {
	repo, mock := newMockProductRepo(t)

	mock.ExpectQuery(`SELECT id, name FROM products WHERE name ILIKE`).
		WithArgs("%latte%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("p1", "Iced Latte").
			AddRow("p2", "Latte Macchiato"))

	products, err := repo.SearchByName("latte", 5)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Iced Latte", products[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductAddImageInsertsRow(t *testing.T) {
	repo, mock := newMockProductRepo(t)

	mock.ExpectExec(`INSERT INTO product_images`).
		WithArgs(sqlmock.AnyArg(), "p1", "https://cdn.example.com/img.png").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.AddImage("p1", "https://cdn.example.com/img.png")

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
