package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "extract-resume-document")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("extraction.json", "no-such-prompt")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "no-such-prompt")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("Parse this: {{.ResumeText}}", map[string]string{"ResumeText": "resume body"})
	assert.Equal(t, "Parse this: resume body", out)
	assert.False(t, strings.Contains(out, "{{"))
}
