package scoring

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// scorePromptTemplate is the fixed wire-format contract sent to the
// inference endpoint. The trailing "Score:" cue primes the response to
// begin with the numeral. Changing this text changes the observable
// prompt bytes, which downstream consumers may depend on.
const scorePromptTemplate = `Based on the following content, answer this yes/no question: {{.Question}}

Content:
{{.Content}}

Provide a score from 0 to 10 based on your confidence in the answer:
- 10 = strongly yes, definitely true
- 7-9 = probably yes, likely true
- 5-6 = uncertain, could go either way
- 3-4 = probably no, likely false
- 0-2 = strongly no, definitely false

Provide only a single number from 0 to 10.
Score:`

// PromptBuilder turns content parts and a yes/no question into a single
// judgment prompt. It is pure: identical inputs always produce
// byte-identical prompts, and no I/O or randomness is involved.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder compiles the fixed scoring template.
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		tmpl: template.Must(template.New("scorePrompt").Parse(scorePromptTemplate)),
	}
}

// Build joins contentParts with newlines, in input order, and embeds
// them with the question into the scoring template. Callers guarantee a
// non-empty contentParts; the engine enforces that precondition.
func (pb *PromptBuilder) Build(contentParts []string, question string) (string, error) {
	data := struct {
		Question string
		Content  string
	}{
		Question: question,
		Content:  strings.Join(contentParts, "\n"),
	}

	var buf bytes.Buffer
	if err := pb.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
