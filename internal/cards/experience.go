package cards

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

func experienceCard(value gjson.Result) Card {
	card := Card{
		Kind:  KindExperience,
		Title: sectionTitles[KindExperience],
		Width: widthFor(KindExperience),
	}

	value.ForEach(func(_, entry gjson.Result) bool {
		if item, ok := experienceItem(entry); ok {
			card.Items = append(card.Items, item)
		}
		return true
	})

	return card
}

func experienceItem(entry gjson.Result) (Item, bool) {
	if !entry.IsObject() {
		// A bare string in the array still names a job.
		if docjson.Present(entry) {
			return Item{Title: strings.TrimSpace(entry.String())}, true
		}
		return Item{}, false
	}

	item := Item{
		Title:    docjson.Resolve(entry, "position", "title", "jobTitle"),
		Subtitle: docjson.Resolve(entry, "company", "employer", "organization"),
		Date:     dateRange(entry, "duration"),
	}

	addList(&item, "Responsibilities", docjson.PresentStrings(entry.Get("responsibilities")))
	addList(&item, "Achievements", docjson.PresentStrings(entry.Get("achievements")))
	addList(&item, "Technologies", docjson.PresentStrings(entry.Get("technologies")))

	return item, !itemEmpty(item)
}

// dateRange resolves a display date for an item. The preferred keys are
// tried first; failing that, a range is built from startDate/endDate when
// either end is known, and finally the catch-all "dates" key is tried.
func dateRange(entry gjson.Result, preferred ...string) string {
	if date := docjson.Resolve(entry, preferred...); date != "" {
		return date
	}

	start := docjson.Resolve(entry, "startDate")
	end := docjson.Resolve(entry, "endDate")
	if start != "" || end != "" {
		if start == "" {
			start = "Start Date N/A"
		}
		if end == "" {
			end = "Present"
		}
		return fmt.Sprintf("%s - %s", start, end)
	}

	return docjson.Resolve(entry, "dates")
}

func addList(item *Item, label string, entries []string) {
	if len(entries) > 0 {
		item.Lists = append(item.Lists, List{Label: label, Entries: entries})
	}
}

// itemEmpty reports whether a normalized item carries no content at all.
// Such items are dropped even when the containing array is non-empty.
func itemEmpty(item Item) bool {
	return item.Title == "" && item.Subtitle == "" && item.Date == "" &&
		item.Summary == "" && len(item.Fields) == 0 && len(item.Lists) == 0
}
