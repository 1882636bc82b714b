package cleansing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	areaNumberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	rangeSplitPattern = regexp.MustCompile(`[～〜]`)
	tsuboFigPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)坪`)
	multiSplitPattern = regexp.MustCompile(`[,、，　\s]+`)
	usageFeePattern   = regexp.MustCompile(`使用料[：:]?(\d+)円`)
	parenFeePattern   = regexp.MustCompile(`[（(](\d+)円[／/]月[）)]`)
	parenFeePattern2  = regexp.MustCompile(`[（(][利使]用料[：:]?月額(\d+)円[）)]`)
)

var squareMeterMarkers = []string{"㎡", "m²", "m2"}

// CleanseArea parses a single floor-area field. Ranges yield min, max and
// their midpoint; single values also carry a tsubo figure, taken verbatim
// from the text when quoted and derived from the m² value otherwise.
func CleanseArea(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	numbers := areaNumberPattern.FindAllString(value, -1)
	if len(numbers) == 0 {
		return withPeriod(Result{"value": value}, period)
	}

	result := Result{}
	unit := "m^2"
	if !containsAny(value, squareMeterMarkers...) && strings.Contains(value, "坪") {
		unit = "坪"
	}
	result["unit"] = unit

	hasRange := containsAny(value, "～", "〜")
	if hasRange && len(numbers) >= 2 {
		// Prefer the figures next to an m² marker so a quoted 坪 figure
		// cannot shift the range.
		var areaNums []float64
		if unit == "m^2" {
			for _, part := range rangeSplitPattern.Split(value, -1) {
				if containsAny(part, squareMeterMarkers...) {
					if n, ok := firstNumber(part); ok {
						areaNums = append(areaNums, n)
					}
				}
			}
		}
		if len(areaNums) < 2 {
			areaNums = []float64{parseNumber(numbers[0]), parseNumber(numbers[1])}
		}
		lo, hi := areaNums[0], areaNums[0]
		for _, n := range areaNums[1:] {
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
		result["min"] = lo
		result["max"] = hi
		result["value"] = roundTo((lo+hi)/2, 3)
	} else {
		v := parseNumber(numbers[0])
		result["value"] = v
		if unit == "m^2" {
			if m := tsuboFigPattern.FindStringSubmatch(value); m != nil {
				result["tsubo"] = parseNumber(m[1])
			} else {
				result["tsubo"] = SquareMetersToTsubo(v)
			}
		}
	}

	if strings.Contains(value, "壁芯") {
		result["measurement_type"] = "壁芯"
	} else if strings.Contains(value, "登記") {
		result["measurement_type"] = "登記"
	}
	return withPeriod(result, period)
}

// CleanseMultipleArea parses list-style area fields such as balcony and
// garden areas, one entry per list segment. Segments name their own type
// before a full-width colon; untyped segments are filed under その他.
func CleanseMultipleArea(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return withPeriod(Result{"areas": []any{}}, period)
	}

	areas := []any{}
	for _, part := range multiSplitPattern.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		info := Result{}
		areaValue := part
		if typ, rest, ok := strings.Cut(part, "："); ok {
			info["type"] = strings.TrimSpace(typ)
			areaValue = strings.TrimSpace(rest)
		} else {
			info["type"] = "その他"
		}

		num := areaNumberPattern.FindString(areaValue)
		if num == "" {
			continue
		}
		v := parseNumber(num)
		info["value"] = v

		unit := "m^2"
		if !containsAny(areaValue, squareMeterMarkers...) && strings.Contains(areaValue, "坪") {
			unit = "坪"
		}
		info["unit"] = unit
		if unit == "m^2" {
			info["tsubo"] = SquareMetersToTsubo(v)
		}

		if m := usageFeePattern.FindStringSubmatch(areaValue); m != nil {
			info["usage_fee"] = atoi(m[1])
		} else if m := parenFeePattern.FindStringSubmatch(areaValue); m != nil {
			info["usage_fee"] = atoi(m[1])
		} else if m := parenFeePattern2.FindStringSubmatch(areaValue); m != nil {
			info["usage_fee"] = atoi(m[1])
		} else if strings.Contains(areaValue, "使用料無") {
			info["usage_fee"] = 0
		}

		if strings.Contains(areaValue, "壁芯") {
			info["measurement_type"] = "壁芯"
		} else if strings.Contains(areaValue, "登記") {
			info["measurement_type"] = "登記"
		} else if strings.Contains(areaValue, "共用") {
			info["measurement_type"] = "共用"
		}

		areas = append(areas, info)
	}
	return withPeriod(Result{"areas": areas}, period)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
