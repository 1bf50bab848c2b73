package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDead21/afc-web/pkg/database"
	"github.com/FDead21/afc-web/pkg/logger"
)

func newMockContentRepo(t *testing.T) (*ContentRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logger.New(logger.Config{Level: logger.LevelError, Format: "text", Output: "stderr"})
	return NewContentRepository(log, database.NewFromDB(db, log)), mock
}

func TestContentGetReturnsValue(t *testing.T) {
	repo, mock := newMockContentRepo(t)

	mock.ExpectQuery(`SELECT content_value FROM site_content`).
		WithArgs("hero_headline").
		WillReturnRows(sqlmock.NewRows([]string{"content_value"}).AddRow("Fresh roasts"))

	value, err := repo.Get("hero_headline")

	require.NoError(t, err)
	assert.Equal(t, "Fresh roasts", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentGetMissingKey(t *testing.T) {
	repo, mock := newMockContentRepo(t)

	mock.ExpectQuery(`SELECT content_value FROM site_content`).
		WithArgs("homepage_sections").
		WillReturnRows(sqlmock.NewRows([]string{"content_value"}))

	_, err := repo.Get("homepage_sections")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "site content with key homepage_sections not found")
}

func TestContentUpdateMissingKeyFails(t *testing.T) {
	repo, mock := newMockContentRepo(t)

	mock.ExpectExec(`UPDATE site_content SET content_value`).
		WithArgs("v", "no_such_key").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update("no_such_key", "v")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestContentUpsertUpdatesExistingRow(t *testing.T) {
	repo, mock := newMockContentRepo(t)

	mock.ExpectExec(`UPDATE site_content SET content_value`).
		WithArgs("[]", "homepage_sections").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert("homepage_sections", "[]")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentUpsertInsertsWhenMissing(t *testing.T) {
	repo, mock := newMockContentRepo(t)

	mock.ExpectExec(`UPDATE site_content SET content_value`).
		WithArgs("[]", "homepage_sections").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO site_content`).
		WithArgs("homepage_sections", "[]").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert("homepage_sections", "[]")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
