package cards

import "strings"

// sectionRule maps key-name patterns to a section kind. Matching is
// case-insensitive substring containment; the first matching rule wins.
// Rules with arrayOnly set only apply when the value is a JSON array;
// a matching key with a non-array value falls through to Generic rather
// than continuing down the table.
type sectionRule struct {
	patterns  []string
	kind      Kind
	arrayOnly bool
}

// sectionRules is the ordered matching policy. Order encodes precedence:
// for example a key containing both "personal" and "summary" classifies
// as Personal.
var sectionRules = []sectionRule{
	{patterns: []string{"personal", "contact"}, kind: KindPersonal},
	{patterns: []string{"summary", "objective"}, kind: KindSummary},
	{patterns: []string{"experience", "work"}, kind: KindExperience, arrayOnly: true},
	{patterns: []string{"education"}, kind: KindEducation, arrayOnly: true},
	{patterns: []string{"skill"}, kind: KindSkills},
	{patterns: []string{"certification", "certificate"}, kind: KindCertifications, arrayOnly: true},
	{patterns: []string{"award"}, kind: KindAwards, arrayOnly: true},
	{patterns: []string{"interest", "hobby"}, kind: KindInterests},
	{patterns: []string{"project"}, kind: KindProjects, arrayOnly: true},
}

// matchKind classifies a top-level key against the rule table.
func matchKind(key string, isArray bool) Kind {
	lower := strings.ToLower(key)

	for _, rule := range sectionRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(lower, pattern) {
				if rule.arrayOnly && !isArray {
					return KindGeneric
				}
				return rule.kind
			}
		}
	}

	return KindGeneric
}

// fullWidthKinds are the array-heavy sections that occupy the full-width
// layout tier. All other cards belong to the regular tier.
var fullWidthKinds = map[Kind]bool{
	KindExperience: true,
	KindEducation:  true,
}

func widthFor(kind Kind) Width {
	if fullWidthKinds[kind] {
		return WidthFull
	}
	return WidthRegular
}
