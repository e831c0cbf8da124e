package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

// recognitionCard normalizes certifications and awards, which share one
// shape: array items that must carry a name-like field to be kept. Items
// lacking every name candidate are dropped even if other fields are
// present. The two kinds stay distinct cards with distinct titles.
func recognitionCard(kind Kind, value gjson.Result, nameKeys ...string) Card {
	card := Card{
		Kind:  kind,
		Title: sectionTitles[kind],
		Width: widthFor(kind),
	}

	value.ForEach(func(_, entry gjson.Result) bool {
		if item, ok := recognitionItem(entry, nameKeys); ok {
			card.Items = append(card.Items, item)
		}
		return true
	})

	return card
}

func recognitionItem(entry gjson.Result, nameKeys []string) (Item, bool) {
	if !entry.IsObject() {
		// A bare string is its own name.
		if docjson.Present(entry) {
			return Item{Title: strings.TrimSpace(entry.String())}, true
		}
		return Item{}, false
	}

	name := docjson.Resolve(entry, nameKeys...)
	if name == "" {
		return Item{}, false
	}

	return Item{
		Title:    name,
		Subtitle: docjson.Resolve(entry, "issuer", "organization", "authority"),
		Date:     dateRange(entry, "date", "year"),
		Summary:  docjson.Resolve(entry, "description"),
	}, true
}
