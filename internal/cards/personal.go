package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

// personalFieldKeys are the source keys consumed by the recognized
// personal fields. Any other present key is emitted as an ad-hoc field so
// unknown personal details are never silently dropped.
var personalFieldKeys = map[string]bool{
	"fullname":    true,
	"name":        true,
	"email":       true,
	"phone":       true,
	"phonenumber": true,
	"location":    true,
	"address":     true,
	"city":        true,
	"country":     true,
}

func personalCard(value gjson.Result) Card {
	card := Card{
		Kind:  KindPersonal,
		Title: sectionTitles[KindPersonal],
		Width: widthFor(KindPersonal),
	}

	if !value.IsObject() {
		// Degraded shape: render whatever text the value carries.
		card.Fields = append(card.Fields, Field{Value: strings.TrimSpace(value.String())})
		return card
	}

	addField := func(label, resolved, icon string) {
		if resolved != "" {
			card.Fields = append(card.Fields, Field{Label: label, Value: resolved, Icon: icon})
		}
	}

	addField("Name", docjson.Resolve(value, "fullName", "name"), "user")
	addField("Email", docjson.Resolve(value, "email"), "mail")
	addField("Phone", docjson.Resolve(value, "phone", "phoneNumber"), "phone")
	addField("Location", docjson.Resolve(value, "location", "address", "city", "country"), "map-pin")

	value.ForEach(func(key, v gjson.Result) bool {
		if personalFieldKeys[strings.ToLower(key.Str)] {
			return true
		}
		if docjson.Present(v) {
			card.Fields = append(card.Fields, Field{
				Label: TitleLabel(key.Str),
				Value: strings.TrimSpace(v.String()),
			})
		}
		return true
	})

	return card
}
