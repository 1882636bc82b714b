package cleansing

import (
	"regexp"
	"strings"
)

var ratingPattern = regexp.MustCompile(`^(\d+)段階/(\d+)段階中`)

// CleanseRating parses energy-efficiency style N段階/M段階中 ratings.
func CleanseRating(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || value == "－" || ShouldSuppress(value) {
		return nullValue(period)
	}

	if m := ratingPattern.FindStringSubmatch(value); m != nil {
		current := atoi(m[1])
		max := atoi(m[2])
		result := Result{
			"current_level": current,
			"max_level":     max,
			"rating_text":   value,
		}
		if max > 0 {
			result["percentage"] = roundTo(float64(current)/float64(max)*100, 1)
		}
		return withPeriod(result, period)
	}
	return withPeriod(Result{"rating_text": value, "parse_failed": true}, period)
}
