package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilderBuild(t *testing.T) {
	builder := NewPromptBuilder()

	prompt, err := builder.Build([]string{"Urgent: server down"}, "Is this urgent?")
	require.NoError(t, err)

	expected := `Based on the following content, answer this yes/no question: Is this urgent?

Content:
Urgent: server down

Provide a score from 0 to 10 based on your confidence in the answer:
- 10 = strongly yes, definitely true
- 7-9 = probably yes, likely true
- 5-6 = uncertain, could go either way
- 3-4 = probably no, likely false
- 0-2 = strongly no, definitely false

Provide only a single number from 0 to 10.
Score:`
	assert.Equal(t, expected, prompt)
}

func TestPromptBuilderJoinsPartsInOrder(t *testing.T) {
	builder := NewPromptBuilder()

	prompt, err := builder.Build([]string{"first", "second", "third"}, "Does order hold?")
	require.NoError(t, err)

	assert.Contains(t, prompt, "Content:\nfirst\nsecond\nthird\n")
	assert.Less(t, strings.Index(prompt, "first"), strings.Index(prompt, "second"))
	assert.Less(t, strings.Index(prompt, "second"), strings.Index(prompt, "third"))
}

func TestPromptBuilderDeterministic(t *testing.T) {
	builder := NewPromptBuilder()

	first, err := builder.Build([]string{"a", "b"}, "Same?")
	require.NoError(t, err)
	second, err := builder.Build([]string{"a", "b"}, "Same?")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPromptBuilderDistinctInputsDiffer(t *testing.T) {
	builder := NewPromptBuilder()

	base, err := builder.Build([]string{"content"}, "Is it so?")
	require.NoError(t, err)
	otherContent, err := builder.Build([]string{"different content"}, "Is it so?")
	require.NoError(t, err)
	otherQuestion, err := builder.Build([]string{"content"}, "Is it not so?")
	require.NoError(t, err)

	assert.NotEqual(t, base, otherContent)
	assert.NotEqual(t, base, otherQuestion)
}

func TestPromptBuilderEndsWithScoreCue(t *testing.T) {
	builder := NewPromptBuilder()

	prompt, err := builder.Build([]string{"content"}, "Yes?")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(prompt, "Score:"),
		"prompt must end with the Score: cue with no trailing newline")
}
