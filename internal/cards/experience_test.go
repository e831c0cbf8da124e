package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestExperienceCard_FullItem(t *testing.T) {
	card := experienceCard(gjson.Parse(`[{
		"position": "Engineer",
		"company": "Acme",
		"duration": "2020 - 2023",
		"responsibilities": ["Built services", "", "Ran on-call"],
		"achievements": ["Cut latency 40%"],
		"technologies": ["Go", null, "Postgres"]
	}]`))

	require.Len(t, card.Items, 1)
	item := card.Items[0]
	assert.Equal(t, "Engineer", item.Title)
	assert.Equal(t, "Acme", item.Subtitle)
	assert.Equal(t, "2020 - 2023", item.Date)
	require.Len(t, item.Lists, 3)
	assert.Equal(t, List{Label: "Responsibilities", Entries: []string{"Built services", "Ran on-call"}}, item.Lists[0])
	assert.Equal(t, List{Label: "Achievements", Entries: []string{"Cut latency 40%"}}, item.Lists[1])
	assert.Equal(t, List{Label: "Technologies", Entries: []string{"Go", "Postgres"}}, item.Lists[2])
}

func TestExperienceCard_PositionSynonyms(t *testing.T) {
	card := experienceCard(gjson.Parse(`[
		{"jobTitle": "Developer", "employer": "Beta Corp"},
		{"title": "Analyst", "organization": "Gamma Inc"}
	]`))

	require.Len(t, card.Items, 2)
	assert.Equal(t, "Developer", card.Items[0].Title)
	assert.Equal(t, "Beta Corp", card.Items[0].Subtitle)
	assert.Equal(t, "Analyst", card.Items[1].Title)
	assert.Equal(t, "Gamma Inc", card.Items[1].Subtitle)
}

func TestExperienceCard_DateRangeFallbacks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"duration wins", `{"duration": "3 years", "startDate": "2020"}`, "3 years"},
		{"full range", `{"startDate": "2020-01", "endDate": "2023-06"}`, "2020-01 - 2023-06"},
		{"open ended", `{"startDate": "2020-01", "endDate": null}`, "2020-01 - Present"},
		{"missing start", `{"endDate": "2023-06"}`, "Start Date N/A - 2023-06"},
		{"dates catch-all", `{"dates": "2020 to 2023"}`, "2020 to 2023"},
		{"nothing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateRange(gjson.Parse(tt.raw), "duration"))
		})
	}
}

func TestExperienceCard_NonArrayListsTreatedAsEmpty(t *testing.T) {
	card := experienceCard(gjson.Parse(`[{
		"position": "Engineer",
		"responsibilities": "shipped code",
		"technologies": 7
	}]`))

	require.Len(t, card.Items, 1)
	assert.Empty(t, card.Items[0].Lists)
}

func TestExperienceCard_FullyEmptyItemDropped(t *testing.T) {
	card := experienceCard(gjson.Parse(`[
		{"position": "", "company": null},
		{"position": "Engineer"}
	]`))

	require.Len(t, card.Items, 1)
	assert.Equal(t, "Engineer", card.Items[0].Title)
}

func TestExperienceCard_StringElementKept(t *testing.T) {
	card := experienceCard(gjson.Parse(`["Engineer at Acme (2020-2023)"]`))

	require.Len(t, card.Items, 1)
	assert.Equal(t, "Engineer at Acme (2020-2023)", card.Items[0].Title)
}
