package domain

import "errors"

// Flashcard type values the model is instructed to produce.
const (
	FlashcardTypeQNA   = "qna"
	FlashcardTypeCloze = "cloze"
)

// Practice item type values.
const (
	PracticeTypeShort = "short"
	PracticeTypeMCQ   = "mcq"
)

// Practice item difficulty levels.
const (
	DifficultyEasy = "easy"
	DifficultyMed  = "med"
	DifficultyHard = "hard"
)

// Study-set validation errors.
var (
	// ErrFlashcardsMissing is returned when the flashcards field is absent.
	ErrFlashcardsMissing = errors.New("flashcards field is missing")

	// ErrPracticeMissing is returned when the practice field is absent.
	ErrPracticeMissing = errors.New("practice field is missing")

	// ErrFlashcardTypeInvalid is returned when a flashcard type is not
	// one of the known values.
	ErrFlashcardTypeInvalid = errors.New("flashcard type must be qna or cloze")

	// ErrFlashcardQuestionEmpty is returned when a flashcard has no question.
	ErrFlashcardQuestionEmpty = errors.New("flashcard question cannot be empty")

	// ErrFlashcardAnswerEmpty is returned when a flashcard has no answer.
	ErrFlashcardAnswerEmpty = errors.New("flashcard answer cannot be empty")

	// ErrPracticeTypeInvalid is returned when a practice item type is not
	// one of the known values.
	ErrPracticeTypeInvalid = errors.New("practice item type must be short or mcq")

	// ErrPracticePromptEmpty is returned when a practice item has no prompt.
	ErrPracticePromptEmpty = errors.New("practice item prompt cannot be empty")

	// ErrPracticeSolutionEmpty is returned when a practice item has no solution.
	ErrPracticeSolutionEmpty = errors.New("practice item solution cannot be empty")

	// ErrDifficultyInvalid is returned when a practice item difficulty is not
	// one of the known levels.
	ErrDifficultyInvalid = errors.New("practice item difficulty must be easy, med or hard")
)

// Flashcard is a question/answer study unit generated from notes.
// Type distinguishes plain Q&A cards from cloze deletions.
type Flashcard struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
}

// PracticeItem is a short-answer or multiple-choice exercise.
// Choices is populated for MCQ items and omitted otherwise.
type PracticeItem struct {
	Type       string   `json:"type"`
	Prompt     string   `json:"prompt"`
	Solution   string   `json:"solution"`
	Choices    []string `json:"choices,omitempty"`
	Difficulty string   `json:"difficulty"`
}

// StudySet aggregates the flashcards and practice items produced by one
// generation call. It is the unit exchanged between the generation and
// export endpoints; the client holds it in between, nothing is persisted.
type StudySet struct {
	Flashcards []Flashcard    `json:"flashcards"`
	Practice   []PracticeItem `json:"practice"`
}

// Validate checks the flashcard's required fields and type enum.
func (f *Flashcard) Validate() error {
	if f.Type != FlashcardTypeQNA && f.Type != FlashcardTypeCloze {
		return ErrFlashcardTypeInvalid
	}
	if f.Question == "" {
		return ErrFlashcardQuestionEmpty
	}
	if f.Answer == "" {
		return ErrFlashcardAnswerEmpty
	}
	return nil
}

// Validate checks the practice item's required fields, type enum and
// difficulty level.
func (p *PracticeItem) Validate() error {
	if p.Type != PracticeTypeShort && p.Type != PracticeTypeMCQ {
		return ErrPracticeTypeInvalid
	}
	if p.Prompt == "" {
		return ErrPracticePromptEmpty
	}
	if p.Solution == "" {
		return ErrPracticeSolutionEmpty
	}
	switch p.Difficulty {
	case DifficultyEasy, DifficultyMed, DifficultyHard:
		return nil
	default:
		return ErrDifficultyInvalid
	}
}

// ValidateShape checks that both top-level collections are present.
// A nil slice after unmarshalling means the field was absent (or null)
// in the source JSON; an empty array is valid.
func (s *StudySet) ValidateShape() error {
	if s.Flashcards == nil {
		return ErrFlashcardsMissing
	}
	if s.Practice == nil {
		return ErrPracticeMissing
	}
	return nil
}

// Validate checks the set's shape and every contained item, including
// enum membership of type and difficulty fields. Call Normalize first so
// defaults are applied before enum checks run.
func (s *StudySet) Validate() error {
	if err := s.ValidateShape(); err != nil {
		return err
	}
	for i := range s.Flashcards {
		if err := s.Flashcards[i].Validate(); err != nil {
			return err
		}
	}
	for i := range s.Practice {
		if err := s.Practice[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Normalize applies defaults: nil tags become empty slices so serialized
// cards always carry a tags array, and an absent difficulty falls back to
// easy. Choices stay nil when absent; they are optional by design.
func (s *StudySet) Normalize() {
	for i := range s.Flashcards {
		if s.Flashcards[i].Tags == nil {
			s.Flashcards[i].Tags = []string{}
		}
	}
	for i := range s.Practice {
		if s.Practice[i].Difficulty == "" {
			s.Practice[i].Difficulty = DifficultyEasy
		}
	}
}
