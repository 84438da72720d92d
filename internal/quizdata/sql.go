package quizdata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "github.com/mattn/go-sqlite3"

	"quizfx/internal/quiz"
)

var ErrBadTable = errors.New("invalid table name")

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// OpenSQLite opens a question database read-only.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// LoadSQL reads every row of table, in insertion order.
func LoadSQL(ctx context.Context, db *sql.DB, table string) ([]quiz.Question, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrBadTable, table)
	}
	query := fmt.Sprintf(
		"SELECT %s, %s, %s, %s, %s, %s FROM %s ORDER BY rowid",
		ColQuestion, ColOptA, ColOptB, ColOptC, ColOptD, ColCorrect, table,
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.Text, &q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3], &q.Correct); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrBadRecord, len(out)+1, err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}
