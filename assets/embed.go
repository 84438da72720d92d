package assets

import (
	"embed"
	"io"
)

//go:embed quiz.csv
var FS embed.FS

// DefaultQuizName is the bundled question set used when no source is configured.
const DefaultQuizName = "quiz.csv"

// OpenDefaultQuiz opens the bundled question CSV.
func OpenDefaultQuiz() (io.ReadCloser, error) {
	return FS.Open(DefaultQuizName)
}
