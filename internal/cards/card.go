// Package cards classifies externally extracted resume documents into
// ordered, display-ready section cards. The input is arbitrary JSON with
// no guaranteed schema; classification buckets each top-level key into a
// known section by fuzzy key matching and normalizes its contents,
// falling back to a generic rendering for unmatched keys.
package cards

import (
	"strings"
	"unicode"
)

// Kind identifies the semantic section a card belongs to.
type Kind string

// Section kinds recognized by the classifier.
const (
	KindPersonal       Kind = "personal"
	KindSummary        Kind = "summary"
	KindExperience     Kind = "experience"
	KindEducation      Kind = "education"
	KindSkills         Kind = "skills"
	KindCertifications Kind = "certifications"
	KindAwards         Kind = "awards"
	KindInterests      Kind = "interests"
	KindProjects       Kind = "projects"
	KindGeneric        Kind = "generic"
)

// Width is a layout hint: array-heavy sections span the full width of the
// page while compact sections fit a grid. Layout itself is external; the
// classifier only tags each card.
type Width string

// Width tiers.
const (
	WidthFull    Width = "full"
	WidthRegular Width = "regular"
)

// Field is a display-ready leaf fact: a label/value pair with an optional
// icon hint for the presentation layer.
type Field struct {
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// List is a labeled group of pass-through entries on an item, such as the
// responsibilities of one job.
type List struct {
	Label   string   `json:"label"`
	Entries []string `json:"entries"`
}

// Item is one normalized record of an array-shaped section, such as a
// single job or degree.
type Item struct {
	Title    string  `json:"title,omitempty"`
	Subtitle string  `json:"subtitle,omitempty"`
	Date     string  `json:"date,omitempty"`
	Summary  string  `json:"summary,omitempty"`
	Fields   []Field `json:"fields,omitempty"`
	Lists    []List  `json:"lists,omitempty"`
}

// Card is one classified section of a document, ready for display.
// Cards are built once per top-level key during a single classification
// pass and are not mutated afterwards.
type Card struct {
	Kind    Kind     `json:"kind"`
	Title   string   `json:"title"`
	Width   Width    `json:"width"`
	Fields  []Field  `json:"fields,omitempty"`
	Items   []Item   `json:"items,omitempty"`
	Entries []string `json:"entries,omitempty"`
}

// sectionTitles are the canonical display titles for matched sections.
// Generic cards are titled from their source key instead.
var sectionTitles = map[Kind]string{
	KindPersonal:       "Personal Information",
	KindSummary:        "Summary",
	KindExperience:     "Experience",
	KindEducation:      "Education",
	KindSkills:         "Skills",
	KindCertifications: "Certifications",
	KindAwards:         "Awards",
	KindInterests:      "Interests",
	KindProjects:       "Projects",
}

// TitleLabel converts a source key like "phoneNumber" or "hobbies_list"
// into a human-readable label ("Phone Number", "Hobbies List").
func TitleLabel(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	runes := []rune(key)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()

	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
