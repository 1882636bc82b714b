package cleansing

import (
	"regexp"
	"strings"
)

var (
	nonDigitRun   = regexp.MustCompile(`\D+`)
	unitHead      = regexp.MustCompile(`^[^（(]+`)
	firstParenCut = regexp.MustCompile(`[（(](.+?)[）)]`)
)

// CleanseNumber parses count-style fields such as 総戸数 or 所在階: the first
// number plus whatever non-numeric remainder serves as the unit.
func CleanseNumber(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	stripped := commaReplacer.Replace(value)
	token, ok := firstNumberToken(stripped)
	if !ok {
		return withPeriod(Result{"value": value}, period)
	}
	result := Result{"value": numericValue(token)}
	if unit := strings.TrimSpace(nonDigitRun.FindString(strings.ReplaceAll(stripped, token, ""))); unit != "" {
		result["unit"] = unit
	}
	return withPeriod(result, period)
}

// CleanseUnits parses unit-count fields, marking from the raw label whether
// the figure is the building total or the current sales round.
func CleanseUnits(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	result := Result{}
	stripped := commaReplacer.Replace(value)
	if token, ok := firstNumberToken(stripped); ok {
		result["value"] = numericValue(token)
		after := stripped[strings.Index(stripped, token)+len(token):]
		if m := unitHead.FindString(after); strings.TrimSpace(m) != "" {
			result["unit"] = strings.TrimSpace(m)
		}
		if m := firstParenCut.FindStringSubmatch(value); m != nil {
			result["note"] = m[1]
		}
	} else {
		result["value"] = value
	}

	if strings.Contains(rawKey, "総") {
		result["is_total"] = true
	} else if strings.Contains(rawKey, "今回") {
		result["is_current_sale"] = true
	}
	return withPeriod(result, period)
}

// CleanseBoolean maps presence/permission words to true or false, keeping
// anything else verbatim.
func CleanseBoolean(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	result := Result{}
	switch {
	case containsAny(value, "有", "あり", "可", "可能", "○"):
		result["value"] = true
	case containsAny(value, "無", "なし", "不可", "×", "-"):
		result["value"] = false
	default:
		result["value"] = value
	}
	return withPeriod(result, period)
}

// CleanseText is the fallback converter: suppression predicate, then the
// trimmed text as-is.
func CleanseText(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}
	return withPeriod(Result{"value": value}, period)
}

// CleanseForceNull drops the value unconditionally. Routed labels whose
// content must never reach structured storage end up here.
func CleanseForceNull(value string, rawKey string, period *int) Result {
	return nullValue(period)
}
