// Package export renders study sets into downloadable formats.
package export

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/studydeck/studydeck-api/internal/domain"
)

// Kind selector values for CSV export.
const (
	KindFlashcards = "flashcards"
	KindPractice   = "practice"
)

// tagSeparator joins multi-valued cells into a single CSV field.
const tagSeparator = ";"

// WriteFlashcardsCSV writes the flashcards table: a header row followed by
// one row per card, with tags joined by semicolons.
func WriteFlashcardsCSV(w io.Writer, cards []domain.Flashcard) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Type", "Question", "Answer", "Tags"}); err != nil {
		return err
	}
	for _, c := range cards {
		row := []string{c.Type, c.Question, c.Answer, strings.Join(c.Tags, tagSeparator)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePracticeCSV writes the practice items table. Items without choices
// get an empty Choices cell.
func WritePracticeCSV(w io.Writer, items []domain.PracticeItem) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Type", "Prompt", "Solution", "Choices", "Difficulty"}); err != nil {
		return err
	}
	for _, p := range items {
		row := []string{p.Type, p.Prompt, p.Solution, strings.Join(p.Choices, tagSeparator), p.Difficulty}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
