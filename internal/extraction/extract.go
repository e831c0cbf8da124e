// Package extraction turns raw resume text into a structured document
// using LLM extraction. The output is an arbitrary JSON object whose
// top-level keys are section candidates; downstream classification makes
// no schema assumptions about it.
package extraction

import (
	"context"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/jonathan/resume-cards/internal/llm"
	"github.com/jonathan/resume-cards/internal/prompts"
)

// ExtractDocument extracts a structured document from cleaned resume text.
// The returned bytes are the validated raw JSON of the document; raw bytes
// are kept (rather than a decoded map) so the extraction's key order
// survives into classification.
func ExtractDocument(ctx context.Context, resumeText string, apiKey string) ([]byte, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}
	if resumeText == "" {
		return nil, &ExtractError{Message: "resume text is empty"}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to create LLM client",
			Cause:   err,
		}
	}
	defer func() { _ = client.Close() }()

	prompt := buildExtractionPrompt(resumeText)

	// Structured extraction needs moderate reasoning but not the top tier.
	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate content from LLM",
			Cause:   err,
		}
	}

	raw := []byte(llm.CleanJSONBlock(responseText))
	if _, err := docjson.Parse(raw); err != nil {
		return nil, &ExtractError{
			Message: "LLM response is not a JSON document",
			Cause:   err,
		}
	}

	return raw, nil
}

// buildExtractionPrompt constructs the prompt for structured extraction
func buildExtractionPrompt(resumeText string) string {
	template := prompts.MustGet("extraction.json", "extract-resume-document")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}
