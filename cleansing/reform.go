package cleansing

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reformDatePattern  = regexp.MustCompile(`(\d{4})年(\d{1,2})月(?:(?:完了)|(?:リフォーム完了))`)
	waterWorkPattern   = regexp.MustCompile(`水回り設備交換[：:]([^　]+)`)
	interiorPattern    = regexp.MustCompile(`内装リフォーム[：:]([^　※]+)`)
	otherWorkPattern   = regexp.MustCompile(`その他[：:]([^※]+)`)
	tailNotePattern    = regexp.MustCompile(`※(.+)$`)
	reformItemSplitter = regexp.MustCompile(`[・,/]`)
)

// CleanseReform parses リフォーム fields: completion month, whether it is
// still scheduled, and the renovated areas grouped into water facilities,
// interior and other work.
func CleanseReform(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	var completionDate any
	if m := reformDatePattern.FindStringSubmatch(value); m != nil {
		completionDate = fmt.Sprintf("%04d-%02d", atoi(m[1]), atoi(m[2]))
	}

	water := reformItems(waterWorkPattern, value)
	interior := reformItems(interiorPattern, value)
	other := reformItems(otherWorkPattern, value)

	// Short phrasings like 2024年9月内装リフォーム完了 carry no itemized list.
	if len(water)+len(interior)+len(other) == 0 && strings.Contains(value, "リフォーム") {
		switch {
		case strings.Contains(value, "内装"):
			interior = []any{"内装一般"}
		case strings.Contains(value, "水回り"):
			water = []any{"水回り一般"}
		default:
			other = []any{"リフォーム実施"}
		}
	}

	hasReform := len(water)+len(interior)+len(other) > 0 || completionDate != nil
	result := Result{
		"completion_date": completionDate,
		"is_scheduled":    strings.Contains(value, "完了予定"),
		"reform_areas": Result{
			"water_facilities": water,
			"interior":         interior,
			"other":            other,
		},
		"has_reform": hasReform,
	}
	if m := tailNotePattern.FindStringSubmatch(value); m != nil {
		result["note"] = strings.TrimSpace(m[1])
	}
	if !hasReform {
		result["raw_value"] = value
	}
	return withPeriod(result, period)
}

func reformItems(p *regexp.Regexp, value string) []any {
	m := p.FindStringSubmatch(value)
	if m == nil {
		return []any{}
	}
	items := []any{}
	for _, item := range reformItemSplitter.Split(m[1], -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
