package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

func projectsCard(value gjson.Result) Card {
	card := Card{
		Kind:  KindProjects,
		Title: sectionTitles[KindProjects],
		Width: widthFor(KindProjects),
	}

	value.ForEach(func(_, entry gjson.Result) bool {
		if item, ok := projectItem(entry); ok {
			card.Items = append(card.Items, item)
		}
		return true
	})

	return card
}

func projectItem(entry gjson.Result) (Item, bool) {
	if !entry.IsObject() {
		if docjson.Present(entry) {
			return Item{Title: strings.TrimSpace(entry.String())}, true
		}
		return Item{}, false
	}

	// Projects without a name are not displayable.
	name := docjson.Resolve(entry, "name", "title")
	if name == "" {
		return Item{}, false
	}

	item := Item{
		Title:   name,
		Date:    dateRange(entry, "date", "year"),
		Summary: docjson.Resolve(entry, "description"),
	}
	addList(&item, "Technologies", docjson.PresentStrings(entry.Get("technologies")))

	return item, true
}
