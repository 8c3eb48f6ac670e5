package parser

import "strings"

type tagEntry struct {
	keyword string
	tag     string
}

// tagTable maps substring keywords to category labels, many-to-one.
// Several entries may fire for one input.
var tagTable = []tagEntry{
	{"frühstück", "Frühstück"}, {"breakfast", "Frühstück"},
	{"mittag", "Mittagessen"}, {"lunch", "Mittagessen"},
	{"abendessen", "Abendessen"}, {"dinner", "Abendessen"},
	{"gym", "Fitness"}, {"fitness", "Fitness"}, {"sport", "Fitness"}, {"training", "Fitness"},
	{"termin", "Termin"}, {"appointment", "Termin"}, {"meeting", "Termin"},
	{"arbeit", "Arbeit"}, {"work", "Arbeit"},
	{"hausaufgaben", "Lernen"}, {"lernen", "Lernen"}, {"study", "Lernen"},
	{"einkaufen", "Einkauf"}, {"shopping", "Einkauf"},
}

type iconEntry struct {
	keyword string
	icon    string
}

// iconTable maps substring keywords to a representative emoji.
// Declaration order decides ties; the first hit wins and at most one
// icon is produced.
var iconTable = []iconEntry{
	{"gym", "🏋️"}, {"sport", "🏃"}, {"yoga", "🧘"}, {"kochen", "🍳"}, {"essen", "🍴"},
	{"einkaufen", "🛒"}, {"arbeit", "💼"}, {"meeting", "📅"}, {"anruf", "📞"},
	{"lesen", "📚"}, {"code", "💻"}, {"putzen", "🧹"}, {"schlafen", "😴"},
	{"arzt", "🏥"}, {"geld", "💰"}, {"auto", "🚗"}, {"party", "🎉"}, {"idee", "💡"},
}

// extractMetadata looks up tags and an icon over the original,
// unmodified input. Matching the original string keeps tag and icon
// detection independent of whatever the earlier stages consumed: a
// date phrase and a tag keyword may overlap in the source sentence
// without interfering.
func extractMetadata(original string) (tags []string, icon string) {
	lower := strings.ToLower(original)

	seen := make(map[string]bool)
	for _, e := range tagTable {
		if strings.Contains(lower, e.keyword) && !seen[e.tag] {
			seen[e.tag] = true
			tags = append(tags, e.tag)
		}
	}

	for _, e := range iconTable {
		if strings.Contains(lower, e.keyword) {
			icon = e.icon
			break
		}
	}

	return tags, icon
}
