package cleansing

import (
	"regexp"
	"strings"
)

var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)[％%]`)

// CleanseBuildingCoverage parses 建ぺい率・容積率 fields. The two ratios
// always appear in document order regardless of separator style, so the
// first two percentages are taken as coverage then floor-area ratio; any
// further pairs belong to conditional zones and are dropped.
func CleanseBuildingCoverage(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	matches := percentPattern.FindAllStringSubmatch(normalizeDigits(value), -1)
	if len(matches) < 2 {
		return withPeriod(Result{"raw_value": value}, period)
	}
	return withPeriod(Result{
		"building_coverage": parseNumber(matches[0][1]),
		"floor_area_ratio":  parseNumber(matches[1][1]),
		"unit":              "%",
	}, period)
}
