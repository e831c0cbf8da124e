package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// genericCard is the structural fallback for keys that match no section
// rule: arrays become bulleted entries, objects become label/value pairs
// and scalars become plain text. The card is titled from its source key.
func genericCard(key string, value gjson.Result) Card {
	card := Card{
		Kind:  KindGeneric,
		Title: TitleLabel(key),
		Width: widthFor(KindGeneric),
	}

	switch {
	case value.IsArray():
		value.ForEach(func(_, element gjson.Result) bool {
			if docjson.Present(element) {
				card.Entries = append(card.Entries, displayText(element))
			}
			return true
		})
	case value.IsObject():
		value.ForEach(func(k, v gjson.Result) bool {
			if docjson.Present(v) {
				card.Fields = append(card.Fields, Field{
					Label: TitleLabel(k.Str),
					Value: displayText(v),
				})
			}
			return true
		})
	default:
		card.Entries = append(card.Entries, strings.TrimSpace(value.String()))
	}

	return card
}

// displayText renders a value as display text. Nested structures are
// pretty-printed JSON rather than the raw compacted form.
func displayText(v gjson.Result) string {
	if v.Type == gjson.JSON {
		return strings.TrimSpace(string(pretty.Pretty([]byte(v.Raw))))
	}
	return strings.TrimSpace(v.String())
}
