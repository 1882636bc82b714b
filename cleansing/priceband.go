package cleansing

import (
	"regexp"
	"strconv"
	"strings"
)

// Price-band texts are only accepted in a handful of literal shapes. Anything
// else is marked unsupported with value -1 so downstream consumers can filter
// it, instead of storing a guess.
var (
	bandSinglePattern     = regexp.MustCompile(`^(\d+(?:,\d{3})*(?:\.\d+)?)万円台(?:（予定）)?（(\d+)(?:戸|区画)）(?:※.*)?$`)
	bandOkuPattern        = regexp.MustCompile(`^(\d+(?:\.\d+)?)億円台（(\d+)(?:戸|区画)）$`)
	bandNoParenPattern    = regexp.MustCompile(`^(\d+(?:,\d{3})*(?:\.\d+)?)万円台\s+(\d+)(?:戸|区画)(?:\s+※.*)?$`)
	bandMultiPattern      = regexp.MustCompile(`^(.+?)（各(\d+)(?:戸|区画)）$`)
	bandOkuManRange       = regexp.MustCompile(`^(\d+(?:,\d{3})*(?:\.\d+)?)万円台～(\d+(?:\.\d+)?)億(\d+(?:,\d{3})*)万円台$`)
	bandRangePattern      = regexp.MustCompile(`^(\d+(?:,\d{3})*(?:\.\d+)?)万円台～(\d+(?:,\d{3})*(?:\.\d+)?)万円台(?:[（(].*?[）)])?(?:※.*)?$`)
	bandOkuManBandPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)億(\d+(?:,\d{3})*)万円台(?:※.*)?$`)
	bandBareBandPattern   = regexp.MustCompile(`^(\d+(?:,\d{3})*(?:\.\d+)?)万円台(?:※.*)?$`)
	bandItemPattern       = regexp.MustCompile(`^(\d+(?:,\d{3})*(?:\.\d+)?)万円台$`)
)

type bandEntry struct {
	price float64
	count *int
}

// CleansePriceBand parses 最多価格帯 texts: the most common price bracket and
// how many units sit in it. The aggregate value is the count-weighted mean
// when counts are known.
func CleansePriceBand(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}
	if containsAny(value, "未定", "要相談") {
		return nullValue(period)
	}

	unsupported := func() Result {
		return withPeriod(Result{"value": -1}, period)
	}
	rangeResult := func(lo, hi float64) Result {
		return withPeriod(Result{
			"unit": "万円",
			"values": []any{
				bandValue(lo, nil),
				bandValue(hi, nil),
			},
			"value": (lo + hi) / 2,
		}, period)
	}

	var entries []bandEntry

	switch {
	case bandOkuManRange.MatchString(value):
		m := bandOkuManRange.FindStringSubmatch(value)
		lo := parseNumber(m[1])
		hi := parseNumber(m[2])*10000 + parseNumber(m[3])
		return rangeResult(lo, hi)

	case bandOkuPattern.MatchString(value):
		m := bandOkuPattern.FindStringSubmatch(value)
		entries = append(entries, bandEntry{parseNumber(m[1]) * 10000, intPtr(m[2])})

	case bandSinglePattern.MatchString(value):
		m := bandSinglePattern.FindStringSubmatch(value)
		entries = append(entries, bandEntry{parseNumber(m[1]), intPtr(m[2])})

	case bandNoParenPattern.MatchString(value):
		m := bandNoParenPattern.FindStringSubmatch(value)
		entries = append(entries, bandEntry{parseNumber(m[1]), intPtr(m[2])})

	case bandMultiPattern.MatchString(value):
		m := bandMultiPattern.FindStringSubmatch(value)
		if !strings.Contains(m[1], "・") {
			return unsupported()
		}
		count := intPtr(m[2])
		items := strings.Split(m[1], "・")
		for _, item := range items {
			im := bandItemPattern.FindStringSubmatch(strings.TrimSpace(item))
			if im == nil {
				return unsupported()
			}
			entries = append(entries, bandEntry{parseNumber(im[1]), count})
		}

	case strings.Contains(value, "・"):
		for _, item := range strings.Split(value, "・") {
			im := bandItemPattern.FindStringSubmatch(strings.TrimSpace(item))
			if im == nil {
				return unsupported()
			}
			entries = append(entries, bandEntry{parseNumber(im[1]), nil})
		}

	case bandRangePattern.MatchString(value):
		m := bandRangePattern.FindStringSubmatch(value)
		return rangeResult(parseNumber(m[1]), parseNumber(m[2]))

	case bandOkuManBandPattern.MatchString(value):
		m := bandOkuManBandPattern.FindStringSubmatch(value)
		one := 1
		entries = append(entries, bandEntry{parseNumber(m[1])*10000 + parseNumber(m[2]), &one})

	case bandBareBandPattern.MatchString(value):
		m := bandBareBandPattern.FindStringSubmatch(value)
		one := 1
		entries = append(entries, bandEntry{parseNumber(m[1]), &one})

	default:
		return unsupported()
	}

	values := make([]any, 0, len(entries))
	for _, e := range entries {
		var c any
		if e.count != nil {
			c = *e.count
		}
		values = append(values, Result{"price": e.price, "count": c})
	}

	result := Result{"unit": "万円", "values": values}
	result["value"] = bandAggregate(entries)
	return withPeriod(result, period)
}

// bandAggregate is the count-weighted mean over entries with known counts,
// falling back to the plain mean when no counts were given.
func bandAggregate(entries []bandEntry) any {
	totalPrice, totalCount := 0.0, 0
	counted := 0
	for _, e := range entries {
		if e.count != nil {
			totalPrice += e.price * float64(*e.count)
			totalCount += *e.count
			counted++
		}
	}
	if counted > 0 {
		if totalCount == 0 {
			return nil
		}
		return totalPrice / float64(totalCount)
	}
	sum := 0.0
	for _, e := range entries {
		sum += e.price
	}
	return sum / float64(len(entries))
}

func bandValue(price float64, count *int) Result {
	var c any
	if count != nil {
		c = *count
	}
	return Result{"price": price, "count": c}
}

func intPtr(s string) *int {
	n, _ := strconv.Atoi(s)
	return &n
}
