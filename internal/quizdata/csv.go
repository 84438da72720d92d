package quizdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"quizfx/internal/quiz"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrBadRecord     = errors.New("bad record")
)

// Column names of the question table, shared by the CSV and SQL sources.
const (
	ColQuestion = "question"
	ColOptA     = "optA"
	ColOptB     = "optB"
	ColOptC     = "optC"
	ColOptD     = "optD"
	ColCorrect  = "correctIndex"
)

var columns = []string{ColQuestion, ColOptA, ColOptB, ColOptC, ColOptD, ColCorrect}

// ReadCSV parses a header-led CSV table into questions. Column order is free;
// header names match case-insensitively.
func ReadCSV(r io.Reader) ([]quiz.Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []quiz.Question
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blankRecord(rec) {
			continue
		}
		field := func(col string) (string, error) {
			i := idx[col]
			if i >= len(rec) {
				return "", fmt.Errorf("%w: line %d: %s absent", ErrBadRecord, line, col)
			}
			return strings.TrimSpace(rec[i]), nil
		}

		var q quiz.Question
		if q.Text, err = field(ColQuestion); err != nil {
			return nil, err
		}
		for i, col := range columns[1:5] {
			if q.Options[i], err = field(col); err != nil {
				return nil, err
			}
		}
		raw, err := field(ColCorrect)
		if err != nil {
			return nil, err
		}
		if q.Correct, err = parseIndex(raw); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		out = append(out, q)
	}
	return out, nil
}

// LoadCSVFile reads questions from a CSV file on disk.
func LoadCSVFile(path string) ([]quiz.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	qs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(columns))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		for _, col := range columns {
			if strings.EqualFold(h, col) {
				idx[col] = i
			}
		}
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return idx, nil
}

// parseIndex accepts integral numbers, including "2.0".
func parseIndex(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("correct index %q is not an integer", s)
	}
	return int(f), nil
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
