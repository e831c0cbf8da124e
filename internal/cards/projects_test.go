package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestProjectsCard_FullItem(t *testing.T) {
	card := projectsCard(gjson.Parse(`[{
		"name": "Side Project",
		"description": "A CLI tool.",
		"technologies": ["Go", "", "SQLite"]
	}]`))

	require.Len(t, card.Items, 1)
	item := card.Items[0]
	assert.Equal(t, "Side Project", item.Title)
	assert.Equal(t, "A CLI tool.", item.Summary)
	assert.Equal(t, []List{{Label: "Technologies", Entries: []string{"Go", "SQLite"}}}, item.Lists)
}

func TestProjectsCard_TitleSynonym(t *testing.T) {
	card := projectsCard(gjson.Parse(`[{"title": "Renderer"}]`))

	require.Len(t, card.Items, 1)
	assert.Equal(t, "Renderer", card.Items[0].Title)
}

func TestProjectsCard_NamelessItemsDropped(t *testing.T) {
	card := projectsCard(gjson.Parse(`[{"description": "No name here", "technologies": ["Go"]}]`))
	assert.Empty(t, card.Items)
}
