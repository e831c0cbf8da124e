package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

// summaryCard renders a summary or objective section. Extraction services
// usually emit a plain string here, but an object carrying the text under
// a synonym key or an array of paragraphs also show up in practice.
func summaryCard(value gjson.Result) Card {
	card := Card{
		Kind:  KindSummary,
		Title: sectionTitles[KindSummary],
		Width: widthFor(KindSummary),
	}

	switch {
	case value.IsObject():
		if text := docjson.Resolve(value, "summary", "objective", "text", "content"); text != "" {
			card.Entries = append(card.Entries, text)
			return card
		}
		value.ForEach(func(key, v gjson.Result) bool {
			if docjson.Present(v) {
				card.Fields = append(card.Fields, Field{
					Label: TitleLabel(key.Str),
					Value: strings.TrimSpace(v.String()),
				})
			}
			return true
		})
	case value.IsArray():
		card.Entries = docjson.PresentStrings(value)
	default:
		card.Entries = append(card.Entries, strings.TrimSpace(value.String()))
	}

	return card
}
