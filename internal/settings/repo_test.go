package settings_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"horizonte/backend/internal/settings"
)

func TestPostgresRepo_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := settings.NewPostgresRepo(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "similarity_threshold", "min_selection", "max_selection", "max_signals"}).
			AddRow(1, 0.24, 6, 12, 48)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, similarity_threshold, min_selection, max_selection, max_signals FROM settings WHERE id = 1")).
			WillReturnRows(rows)

		s, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, s)
		assert.Equal(t, 0.24, s.SimilarityThreshold)
		assert.Equal(t, 12, s.MaxSelection)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
			WillReturnError(sqlmock.ErrCancelled)

		s, err := repo.Get(context.Background())
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestPostgresRepo_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := settings.NewPostgresRepo(db)

	s := &settings.Settings{
		SimilarityThreshold: 0.3,
		MinSelection:        4,
		MaxSelection:        10,
		MaxSignals:          30,
	}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE settings")).
		WithArgs(s.SimilarityThreshold, s.MinSelection, s.MaxSelection, s.MaxSignals).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Update(context.Background(), s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
