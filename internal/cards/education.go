package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

func educationCard(value gjson.Result) Card {
	card := Card{
		Kind:  KindEducation,
		Title: sectionTitles[KindEducation],
		Width: widthFor(KindEducation),
	}

	value.ForEach(func(_, entry gjson.Result) bool {
		if item, ok := educationItem(entry); ok {
			card.Items = append(card.Items, item)
		}
		return true
	})

	return card
}

func educationItem(entry gjson.Result) (Item, bool) {
	if !entry.IsObject() {
		if docjson.Present(entry) {
			return Item{Title: strings.TrimSpace(entry.String())}, true
		}
		return Item{}, false
	}

	item := Item{
		Title:    docjson.Resolve(entry, "degree", "qualification"),
		Subtitle: docjson.Resolve(entry, "institution", "school", "university"),
		Date:     dateRange(entry, "year", "graduationDate"),
	}

	// Either key may carry the course list; first non-empty wins.
	courses := docjson.PresentStrings(entry.Get("courses"))
	if len(courses) == 0 {
		courses = docjson.PresentStrings(entry.Get("relevantCoursework"))
	}
	addList(&item, "Courses", courses)

	return item, !itemEmpty(item)
}
