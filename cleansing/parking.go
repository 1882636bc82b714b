package cleansing

import (
	"regexp"
	"strings"
)

var (
	parkingRangePatterns = []struct {
		pattern *regexp.Regexp
		parse   func(m []string) (int, int)
	}{
		{regexp.MustCompile(`(\d+)万(\d+)円～(\d+)万(\d+)円`), func(m []string) (int, int) {
			return atoi(m[1])*10000 + atoi(m[2]), atoi(m[3])*10000 + atoi(m[4])
		}},
		{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)円～(\d+)万(\d+)円`), func(m []string) (int, int) {
			return atoi(commaReplacer.Replace(m[1])), atoi(m[2])*10000 + atoi(m[3])
		}},
		{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)円～(\d+)万円`), func(m []string) (int, int) {
			return atoi(commaReplacer.Replace(m[1])), atoi(m[2]) * 10000
		}},
		{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)円～(\d+(?:,\d{3})*(?:\.\d+)?)円`), func(m []string) (int, int) {
			return atoi(commaReplacer.Replace(m[1])), atoi(commaReplacer.Replace(m[2]))
		}},
	}
	parkingFeePatterns = []struct {
		pattern *regexp.Regexp
		parse   func(m []string) int
	}{
		{regexp.MustCompile(`(\d+)万(\d+)円`), func(m []string) int { return atoi(m[1])*10000 + atoi(m[2]) }},
		{regexp.MustCompile(`(\d+)万円`), func(m []string) int { return atoi(m[1]) * 10000 }},
		{regexp.MustCompile(`(\d+)円`), func(m []string) int { return atoi(m[1]) }},
	}
	zeroYenPattern = regexp.MustCompile(`(^|\D)0円($|\D)`)
)

// CleanseParking parses 駐車場 fields: availability, location class, fee as
// a single value or range, and billing frequency. The shape always carries
// every key so absent figures read as explicit nulls.
func CleanseParking(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return withPeriod(Result{"availability": false, "value": nil}, period)
	}
	if value == "空無" || value == "無" {
		return withPeriod(Result{"availability": false, "value": nil}, period)
	}

	result := Result{
		"availability": true,
		"location":     nil,
		"value":        nil,
		"min":          nil,
		"max":          nil,
		"unit":         nil,
		"frequency":    nil,
		"note":         nil,
	}

	onSite := strings.Contains(value, "敷地内")
	offSite := strings.Contains(value, "敷地外")
	switch {
	case onSite || offSite:
		if onSite {
			result["location"] = "敷地内"
		} else {
			result["location"] = "敷地外"
		}
		if containsAny(value, "料金無", "無料") || zeroYenPattern.MatchString(value) {
			result["value"] = 0
			result["unit"] = "円"
		} else if !applyParkingRange(result, value) {
			applyParkingFee(result, value)
		}
		if hasSlash(value) {
			if strings.Contains(value, "月") {
				result["frequency"] = "月"
			} else if strings.Contains(value, "年") {
				result["frequency"] = "年"
			}
		}

	case strings.Contains(value, "専用使用権付駐車場"):
		result["location"] = "専用使用権付"
		if strings.Contains(value, "無料") {
			result["value"] = 0
			result["unit"] = "円"
		} else {
			applyParkingFee(result, value)
		}
		if hasSlash(value) && strings.Contains(value, "月") {
			result["frequency"] = "月"
		}

	case strings.Contains(value, "機械"):
		result["location"] = "機械式"
		applyParkingFee(result, value)
		if hasSlash(value) && strings.Contains(value, "月") {
			result["frequency"] = "月"
		}

	case strings.Contains(value, "平置"):
		result["location"] = "平置き"
	}

	if strings.Contains(value, "分譲駐車場") {
		result["location"] = "分譲駐車場"
	} else if result["location"] == nil {
		result["note"] = value
	}
	return withPeriod(result, period)
}

func applyParkingRange(result Result, value string) bool {
	for _, rp := range parkingRangePatterns {
		if m := rp.pattern.FindStringSubmatch(value); m != nil {
			lo, hi := rp.parse(m)
			result["min"] = lo
			result["max"] = hi
			result["value"] = (lo + hi) / 2
			result["unit"] = "円"
			return true
		}
	}
	return false
}

func applyParkingFee(result Result, value string) {
	for _, fp := range parkingFeePatterns {
		if m := fp.pattern.FindStringSubmatch(value); m != nil {
			result["value"] = fp.parse(m)
			result["unit"] = "円"
			return
		}
	}
}

func hasSlash(value string) bool {
	return containsAny(value, "/", "／")
}
