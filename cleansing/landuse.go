package cleansing

import (
	"regexp"
	"strings"
)

// basicLandTypes is the registry of legal land categories (地目).
var basicLandTypes = []string{
	"宅地", "田", "畑", "山林", "原野", "雑種地", "公衆用道路",
	"墓地", "境内地", "運河用地", "水道用地", "用悪水路",
	"ため池", "堤", "井溝", "保安林", "公園", "鉄道用地",
}

var (
	landUseSplitPattern = regexp.MustCompile(`[・、，,／/]`)
	landUsePrefix       = regexp.MustCompile(`^地目：`)
	tailNoteStrip       = regexp.MustCompile(`※.+$`)
)

// CleanseLandUse parses 地目 fields into the list of legal land categories,
// folding parenthesized remarks and ※ tails into a note.
func CleanseLandUse(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	var noteParts []string
	cleanValue := value
	for _, m := range fullBracketPattern.FindAllStringSubmatch(value, -1) {
		noteParts = append(noteParts, m[1])
		cleanValue = strings.ReplaceAll(cleanValue, "（"+m[1]+"）", "")
	}
	if m := tailNotePattern.FindStringSubmatch(value); m != nil {
		noteParts = append(noteParts, m[1])
		cleanValue = tailNoteStrip.ReplaceAllString(cleanValue, "")
	}
	cleanValue = strings.TrimSpace(landUsePrefix.ReplaceAllString(cleanValue, ""))

	var landTypes []string
	for _, part := range landUseSplitPattern.Split(cleanValue, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		matched := part
		if !isBasicLandType(part) {
			for _, lt := range basicLandTypes {
				if strings.Contains(part, lt) {
					matched = lt
					break
				}
			}
		}
		landTypes = append(landTypes, matched)
	}

	values := []any{}
	for _, lt := range dedupeStrings(landTypes) {
		values = append(values, lt)
	}
	if len(values) == 0 {
		values = []any{cleanValue}
	}

	result := Result{"values": values}
	if len(noteParts) > 0 {
		result["note"] = strings.Join(noteParts, "、")
	}
	return withPeriod(result, period)
}

func isBasicLandType(s string) bool {
	for _, lt := range basicLandTypes {
		if s == lt {
			return true
		}
	}
	return false
}
