package quizdata

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectQuestions = "SELECT question, optA, optB, optC, optD, correctIndex FROM questions ORDER BY rowid"

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestLoadSQL(t *testing.T) {
	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(columns).
		AddRow("Who leads Rhodes Island?", "Amiya", "W", "Texas", "Ch'en", 0).
		AddRow("Oripathy comes from?", "Water", "Originium", "Iron", "Salt", 1)
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestions)).WillReturnRows(rows)

	qs, err := LoadSQL(context.Background(), db, "questions")
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Amiya", qs[0].Options[0])
	assert.Equal(t, 1, qs[1].Correct)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSQLQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestions)).WillReturnError(errors.New("no such table"))

	_, err := LoadSQL(context.Background(), db, "questions")
	assert.ErrorContains(t, err, "no such table")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSQLScanError(t *testing.T) {
	db, mock := setupMockDB(t)
	rows := sqlmock.NewRows(columns).AddRow("q", "a", "b", "c", "d", "not-a-number")
	mock.ExpectQuery(regexp.QuoteMeta(selectQuestions)).WillReturnRows(rows)

	_, err := LoadSQL(context.Background(), db, "questions")
	assert.ErrorIs(t, err, ErrBadRecord)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSQLRejectsTableName(t *testing.T) {
	db, mock := setupMockDB(t)
	_, err := LoadSQL(context.Background(), db, "questions; DROP TABLE x")
	assert.ErrorIs(t, err, ErrBadTable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
