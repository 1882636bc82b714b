package cleansing

import (
	"regexp"
	"strings"
)

var (
	zoningSplitPattern      = regexp.MustCompile(`[,、，]`)
	restrictionSplitPattern = regexp.MustCompile(`[,、，・]`)
)

// CleanseZoning splits 用途地域 fields into a list of zone names. The shape
// is always {"values": [...]}, empty on missing data.
func CleanseZoning(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return withPeriod(Result{"values": []any{}}, period)
	}

	zones := []any{}
	for _, part := range zoningSplitPattern.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part != "" && part != "-" {
			zones = append(zones, part)
		}
	}
	return withPeriod(Result{"values": zones}, period)
}

// CleanseRestrictions splits 制限事項 fields into a list. Conditional
// clauses joined with a full-width colon stay as one entry.
func CleanseRestrictions(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return withPeriod(Result{"restrictions": []any{}}, period)
	}

	restrictions := []any{}
	for _, part := range restrictionSplitPattern.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part != "" && part != "-" {
			restrictions = append(restrictions, part)
		}
	}
	return withPeriod(Result{"restrictions": restrictions}, period)
}
