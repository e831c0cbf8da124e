package cards

import (
	"github.com/jonathan/resume-cards/internal/docjson"
	"github.com/tidwall/gjson"
)

// Classify parses raw document bytes and classifies every top-level key
// into section cards. The only error condition is malformed input JSON;
// shape surprises inside the document never fail classification.
func Classify(raw []byte) ([]Card, error) {
	doc, err := docjson.Parse(raw)
	if err != nil {
		return nil, err
	}
	return ClassifyDocument(doc), nil
}

// ClassifyDocument classifies a parsed document into ordered cards.
//
// Top-level values without real content are skipped entirely. Output
// ordering is by tier, not input order: the Personal card leads, then
// Summary, then the full-width tier (Experience, Education), then all
// regular-tier cards. Within a tier, document encounter order is kept.
//
// The function is pure and safe for concurrent use on different
// documents. A zero-length result is a normal outcome for an all-absent
// document, not an error.
func ClassifyDocument(doc gjson.Result) []Card {
	var personal, summary, fullWidth, regular []Card

	doc.ForEach(func(key, value gjson.Result) bool {
		if !docjson.Present(value) {
			return true
		}

		card, ok := buildCard(key.Str, value)
		if !ok {
			return true
		}

		switch {
		case card.Kind == KindPersonal:
			personal = append(personal, card)
		case card.Kind == KindSummary:
			summary = append(summary, card)
		case card.Width == WidthFull:
			fullWidth = append(fullWidth, card)
		default:
			regular = append(regular, card)
		}
		return true
	})

	out := make([]Card, 0, len(personal)+len(summary)+len(fullWidth)+len(regular))
	out = append(out, personal...)
	out = append(out, summary...)
	out = append(out, fullWidth...)
	out = append(out, regular...)
	return out
}

// buildCard normalizes one top-level entry. A panic inside a section
// normalizer drops that one card and never aborts the remaining
// classification.
func buildCard(key string, value gjson.Result) (card Card, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	kind := matchKind(key, value.IsArray())

	switch kind {
	case KindPersonal:
		card = personalCard(value)
	case KindSummary:
		card = summaryCard(value)
	case KindExperience:
		card = experienceCard(value)
	case KindEducation:
		card = educationCard(value)
	case KindSkills:
		card = skillsCard(value)
	case KindCertifications:
		card = recognitionCard(KindCertifications, value, "name", "title", "certification")
	case KindAwards:
		card = recognitionCard(KindAwards, value, "name", "title")
	case KindInterests:
		card = interestsCard(value)
	case KindProjects:
		card = projectsCard(value)
	default:
		card = genericCard(key, value)
	}

	// Array-shaped sections whose every item was dropped are absent as a
	// whole and must not appear even as empty placeholders.
	if itemSections[kind] && len(card.Items) == 0 {
		return Card{}, false
	}

	return card, true
}

// itemSections are the kinds whose cards are only meaningful with at
// least one surviving item.
var itemSections = map[Kind]bool{
	KindExperience:     true,
	KindEducation:      true,
	KindCertifications: true,
	KindAwards:         true,
	KindProjects:       true,
}
