package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSummaryCard_PlainString(t *testing.T) {
	card := summaryCard(gjson.Parse(`"Backend engineer with ten years of experience."`))
	assert.Equal(t, []string{"Backend engineer with ten years of experience."}, card.Entries)
}

func TestSummaryCard_ObjectWithTextKey(t *testing.T) {
	card := summaryCard(gjson.Parse(`{"objective": "Lead a platform team."}`))
	assert.Equal(t, []string{"Lead a platform team."}, card.Entries)
}

func TestSummaryCard_ObjectWithoutTextKeyFallsBackToFields(t *testing.T) {
	card := summaryCard(gjson.Parse(`{"headline": "Platform engineer", "tagline": ""}`))

	require.Len(t, card.Fields, 1)
	assert.Equal(t, Field{Label: "Headline", Value: "Platform engineer"}, card.Fields[0])
}

func TestSummaryCard_ArrayOfParagraphs(t *testing.T) {
	card := summaryCard(gjson.Parse(`["First paragraph.", "", "Second paragraph."]`))
	assert.Equal(t, []string{"First paragraph.", "Second paragraph."}, card.Entries)
}
