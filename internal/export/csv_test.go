package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studydeck/studydeck-api/internal/domain"
)

func TestWriteFlashcardsCSV(t *testing.T) {
	t.Run("joins_tags_with_semicolons", func(t *testing.T) {
		cards := []domain.Flashcard{
			{Type: "qna", Question: "Q1", Answer: "A1", Tags: []string{"math", "algebra"}},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteFlashcardsCSV(&buf, cards))

		assert.Equal(t, "Type,Question,Answer,Tags\nqna,Q1,A1,math;algebra\n", buf.String())
	})

	t.Run("empty_input_yields_header_only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteFlashcardsCSV(&buf, nil))

		assert.Equal(t, "Type,Question,Answer,Tags\n", buf.String())
	})

	t.Run("quotes_fields_containing_commas", func(t *testing.T) {
		cards := []domain.Flashcard{
			{Type: "cloze", Question: "a, b and ____", Answer: "c", Tags: []string{}},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteFlashcardsCSV(&buf, cards))

		assert.Contains(t, buf.String(), `"a, b and ____"`)
	})

	t.Run("out_of_enum_type_passes_through", func(t *testing.T) {
		// Export does not re-validate semantics, only structure.
		cards := []domain.Flashcard{
			{Type: "freestyle", Question: "Q", Answer: "A", Tags: []string{}},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteFlashcardsCSV(&buf, cards))

		assert.Contains(t, buf.String(), "freestyle,Q,A,\n")
	})
}

func TestWritePracticeCSV(t *testing.T) {
	t.Run("joins_choices_with_semicolons", func(t *testing.T) {
		items := []domain.PracticeItem{
			{Type: "mcq", Prompt: "P1", Solution: "S1", Choices: []string{"A", "B", "C"}, Difficulty: "hard"},
		}

		var buf bytes.Buffer
		require.NoError(t, WritePracticeCSV(&buf, items))

		assert.Equal(t, "Type,Prompt,Solution,Choices,Difficulty\nmcq,P1,S1,A;B;C,hard\n", buf.String())
	})

	t.Run("missing_choices_yields_empty_cell", func(t *testing.T) {
		items := []domain.PracticeItem{
			{Type: "short", Prompt: "P1", Solution: "S1", Difficulty: "easy"},
		}

		var buf bytes.Buffer
		require.NoError(t, WritePracticeCSV(&buf, items))

		assert.Equal(t, "Type,Prompt,Solution,Choices,Difficulty\nshort,P1,S1,,easy\n", buf.String())
	})
}
