package cards

import (
	"strings"

	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

// skillsCard accepts three input shapes transparently: an object of
// categories (each value an array or a comma-separated string), a flat
// array, or a single comma-separated string. Everything is flattened into
// one deduplicated list. Other shapes, such as a bare number, yield a
// card with no entries rather than an error.
func skillsCard(value gjson.Result) Card {
	return Card{
		Kind:    KindSkills,
		Title:   sectionTitles[KindSkills],
		Width:   widthFor(KindSkills),
		Entries: flattenEntries(value),
	}
}

func interestsCard(value gjson.Result) Card {
	return Card{
		Kind:    KindInterests,
		Title:   sectionTitles[KindInterests],
		Width:   widthFor(KindInterests),
		Entries: flattenEntries(value),
	}
}

// flattenEntries collects entry strings from any of the accepted shapes
// and deduplicates them by exact equality after trimming, preserving
// first-seen order.
func flattenEntries(value gjson.Result) []string {
	var collected []string

	switch {
	case value.IsObject():
		value.ForEach(func(_, category gjson.Result) bool {
			collected = append(collected, categoryEntries(category)...)
			return true
		})
	case value.IsArray():
		collected = docjson.PresentStrings(value)
	case value.Type == gjson.String:
		collected = splitCommaList(value.Str)
	}

	return dedupe(collected)
}

// categoryEntries extracts the entries of one category value, which may
// itself be an array or a comma-separated string. Other shapes contribute
// nothing.
func categoryEntries(category gjson.Result) []string {
	if category.IsArray() {
		return docjson.PresentStrings(category)
	}
	if category.Type == gjson.String {
		return splitCommaList(category.Str)
	}
	return nil
}

func splitCommaList(s string) []string {
	var out []string
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

func dedupe(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, exists := seen[e]; exists {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
