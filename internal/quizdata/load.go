package quizdata

import (
	"context"
	"errors"
	"fmt"

	"quizfx/assets"
	"quizfx/internal/quiz"
)

var ErrUnknownSource = errors.New("unknown question source")

const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
)

// Source names where the question table lives.
type Source struct {
	Kind  string
	Path  string
	Table string
}

// LoadDefault reads the bundled question set.
func LoadDefault() ([]quiz.Question, error) {
	f, err := assets.OpenDefaultQuiz()
	if err != nil {
		return nil, fmt.Errorf("open bundled quiz: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// Load reads the records from src and builds a validated bank.
func Load(ctx context.Context, src Source) (*quiz.Bank, error) {
	var (
		records []quiz.Question
		err     error
	)
	switch src.Kind {
	case SourceEmbedded, "":
		records, err = LoadDefault()
	case SourceCSV:
		records, err = LoadCSVFile(src.Path)
	case SourceSQLite:
		db, openErr := OpenSQLite(src.Path)
		if openErr != nil {
			return nil, openErr
		}
		defer db.Close()
		records, err = LoadSQL(ctx, db, src.Table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, src.Kind)
	}
	if err != nil {
		return nil, err
	}
	return quiz.NewBank(records)
}
