package generation

import (
	"fmt"
	"strings"
	"text/template"
)

// SystemPrompt is the fixed instruction sent with every generation call.
// It embeds the exact target JSON shape and the authoring guidelines; the
// closing directive keeps the model from wrapping the JSON in commentary.
const SystemPrompt = `You are an expert study buddy. Given raw notes, produce STRICT JSON only, matching this schema:
{
  "flashcards": [
     {"type":"qna|cloze","question":"...","answer":"...","tags":["topic","subtopic"]}
  ],
  "practice": [
     {"type":"short|mcq","prompt":"...","solution":"...","choices":["A","B","C","D"],"difficulty":"easy|med|hard"}
  ]
}
Guidelines:
- Prefer 8–12 flashcards; include at least 3 cloze deletions.
- 4–6 practice items; at least 2 MCQ with plausible distractors.
- Keep answers concise and factual; if a formula appears, include it.
- Use tags (e.g., course/topic) for grouping.
Return ONLY JSON per schema—no commentary.`

// userTemplate renders the user message from course, topic and notes.
// The triple quotes fence the notes off from the surrounding labels.
var userTemplate = template.Must(template.New("user").Parse(
	"Course: {{.Course}}\nTopic: {{.Topic}}\nNotes:\n\"\"\"\n{{.Notes}}\n\"\"\"\n"))

// UserPrompt builds the user message for a generation request. It is a
// pure function of the request; empty notes pass through unchanged and
// the model decides how to respond to insufficient input.
func UserPrompt(req Request) (string, error) {
	var b strings.Builder
	if err := userTemplate.Execute(&b, req); err != nil {
		return "", fmt.Errorf("failed to execute user prompt template: %w", err)
	}
	return b.String(), nil
}
