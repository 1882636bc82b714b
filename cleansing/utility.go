package cleansing

import (
	"regexp"
	"strings"
)

var (
	utilityRangePattern  = regexp.MustCompile(`約?(\d+(?:\.\d+)?)万円～(\d+(?:\.\d+)?)万円`)
	utilitySinglePattern = regexp.MustCompile(`約?(\d+(?:\.\d+)?)万円`)
)

// CleanseUtilityCost parses 光熱費目安 fields. Undefined markers are kept as
// explicit is_undefined results since the page showing 未定 is itself a fact
// worth keeping.
func CleanseUtilityCost(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "未定") || strings.Contains(value, "要相談") {
		return withPeriod(Result{"value": nil, "is_undefined": true}, period)
	}
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	result := Result{"unit": "万円"}
	if strings.Contains(value, "約") {
		result["approximate"] = true
	}
	if strings.Contains(value, "年") {
		result["frequency"] = "年"
	} else {
		result["frequency"] = "月"
	}

	if m := utilityRangePattern.FindStringSubmatch(value); m != nil {
		result["min"] = parseNumber(m[1])
		result["max"] = parseNumber(m[2])
		return withPeriod(result, period)
	}
	if m := utilitySinglePattern.FindStringSubmatch(value); m != nil {
		result["value"] = parseNumber(m[1])
		return withPeriod(result, period)
	}
	return withPeriod(Result{"value": value, "parse_failed": true}, period)
}
