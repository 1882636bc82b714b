package cleansing

import (
	"regexp"
	"strings"
)

var (
	accessSplitPattern = regexp.MustCompile(`[\t\n]`)
	stationPattern     = regexp.MustCompile(`^(.+?)「(.+?)」(.+?)(\d+)分`)
	busPattern         = regexp.MustCompile(`^バス(\d+)分.*?バス停「(.+?)」.*?歩(\d+)分`)
	carPattern         = regexp.MustCompile(`車(\d+)分`)
)

// CleanseAccess parses 交通 fields into one route per tab-separated segment.
// Train segments read 路線「駅」歩N分; bus and car phrasings get their own
// shapes.
func CleanseAccess(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	var routes []any
	for _, part := range accessSplitPattern.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part == "" || strings.Contains(part, "[乗り換え案内]") {
			continue
		}
		if m := stationPattern.FindStringSubmatch(part); m != nil {
			routes = append(routes, Result{
				"line":    strings.TrimSpace(m[1]),
				"station": strings.TrimSpace(m[2]),
				"method":  strings.TrimSpace(m[3]),
				"time":    atoi(m[4]),
			})
			continue
		}
		if m := busPattern.FindStringSubmatch(part); m != nil {
			routes = append(routes, Result{
				"line":         "バス",
				"station":      m[2],
				"method":       "バス",
				"time":         atoi(m[1]),
				"walk_to_stop": atoi(m[3]),
			})
			continue
		}
		if strings.Contains(part, "車") {
			if m := carPattern.FindStringSubmatch(part); m != nil {
				routes = append(routes, Result{
					"line":    "車",
					"station": "",
					"method":  "車",
					"time":    atoi(m[1]),
				})
			}
		}
	}

	if len(routes) == 0 {
		return withPeriod(Result{"value": value}, period)
	}
	return withPeriod(Result{"routes": routes}, period)
}
