package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-cards/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCards_ClassifierOutputConforms(t *testing.T) {
	built, err := cards.Classify([]byte(`{
		"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
		"summary": "Engineer with ten years of experience.",
		"workExperience": [
			{"position": "Engineer", "company": "Acme", "startDate": "2019", "endDate": "2023",
			 "responsibilities": ["Built services", "Led reviews"]}
		],
		"skills": ["Go", "SQL"],
		"miscellaneous": {"note": "something"}
	}`))
	require.NoError(t, err)
	require.NotEmpty(t, built)

	cardsJSON, err := json.Marshal(built)
	require.NoError(t, err)

	assert.NoError(t, ValidateCards(cardsJSON))
}

func TestValidateCards_EmptyArrayIsValid(t *testing.T) {
	assert.NoError(t, ValidateCards([]byte(`[]`)))
}

func TestValidateCards_RejectsUnknownKind(t *testing.T) {
	err := ValidateCards([]byte(`[{"kind": "mystery", "title": "X", "width": "regular"}]`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
}

func TestValidateCards_RejectsMissingTitle(t *testing.T) {
	err := ValidateCards([]byte(`[{"kind": "skills", "width": "regular"}]`))
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateCards_RejectsExtraProperties(t *testing.T) {
	err := ValidateCards([]byte(`[{"kind": "skills", "title": "Skills", "width": "regular", "color": "red"}]`))
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nonsense"}`, `{}`)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()

	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"type": "object",
		"required": ["kind"],
		"properties": {"kind": {"type": "string"}}
	}`), 0o644))

	validPath := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(validPath, []byte(`{"kind": "skills"}`), 0o644))
	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	invalidPath := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte(`{"kind": 7}`), 0o644))
	err := ValidateJSON(schemaPath, invalidPath)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "kind")
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object"}`), 0o644))

	assert.Error(t, ValidateJSON(filepath.Join(dir, "nope.json"), schemaPath))
	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(dir, "nope.json")))
}
