package db

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*pgStore, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return &pgStore{db: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

func TestReorderCommits(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM releases FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE releases SET sort_order = $1 WHERE id = $2")).
		WithArgs(0, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, s.ReorderReleases([]int{7}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A batch whose commit fails must not report success: the dashboard
// keeps its optimistic order only when the database really changed.
func TestReorderSurfacesCommitFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM releases FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE releases SET sort_order = $1 WHERE id = $2")).
		WithArgs(0, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := s.ReorderReleases([]int{7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVideoSurfacesCommitFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT sort_order FROM videos FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"sort_order"}))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO videos")).
		WithArgs("Tour Diary", "https://www.youtube.com/embed/abc", nil, 0, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "title", "embed_url", "description", "sort_order", "created_by", "created_at"}).
			AddRow(1, "Tour Diary", "https://www.youtube.com/embed/abc", nil, 0, 1, time.Now()))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := s.CreateVideo("Tour Diary", "https://www.youtube.com/embed/abc", nil, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}
