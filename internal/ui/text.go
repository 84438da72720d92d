package ui

import (
	"fmt"
	"strings"
)

// Screen copy.
const (
	LoadingText = "Loading..."
	TitleText   = "Arknights Quiz (Difficulty: Medium)"
)

func CountText(n int) string {
	return fmt.Sprintf("%d questions in total", n)
}

func QuestionText(index int, text string) string {
	return fmt.Sprintf("Q%d: %s", index+1, text)
}

func ProgressText(index, count, score int) string {
	return fmt.Sprintf("Progress: %d / %d | Score: %d", index+1, count, score)
}

func ScoreText(percent int) string {
	return fmt.Sprintf("Your score: %d", percent)
}

func TallyText(score, count int) string {
	return fmt.Sprintf("(%d / %d correct)", score, count)
}

// Wrap breaks text into lines of at most maxChars runes, splitting on
// spaces and hard-splitting words that do not fit.
func Wrap(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}
	var (
		lines []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = cur[:0]
		}
	}
	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > maxChars {
			flush()
			lines = append(lines, string(w[:maxChars]))
			w = w[maxChars:]
		}
		if len(w) == 0 {
			continue
		}
		if len(cur) > 0 && len(cur)+1+len(w) > maxChars {
			flush()
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	flush()
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
