package cleansing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ymdPattern      = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	ymPattern       = regexp.MustCompile(`(\d{4})年(\d{1,2})月`)
	slashYMD        = regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`)
	contractPattern = regexp.MustCompile(`契約後(\d+(?:\.\d+)?)ヶ月`)
	asteriskNote    = regexp.MustCompile(`※(.+)`)
)

// CleanseDate parses completion-date style fields (築年月, 完成時期). The
// day is estimated from 上旬/中旬/下旬 qualifiers when only a month is given.
func CleanseDate(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" {
		return nullValue(period)
	}
	if value == "未定" {
		return withPeriod(Result{"is_undefined": true}, period)
	}
	if ShouldSuppress(value) {
		return nullValue(period)
	}

	result := Result{}
	if y, mo, d, ok := calendarDate(value); ok {
		result["year"] = y
		result["month"] = mo
		if d > 0 {
			result["day"] = d
			result["estimated_date"] = fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
		} else {
			switch {
			case strings.Contains(value, "上旬"):
				result["period_text"] = "上旬"
				result["estimated_date"] = fmt.Sprintf("%04d-%02d-05", y, mo)
			case strings.Contains(value, "中旬"):
				result["period_text"] = "中旬"
				result["estimated_date"] = fmt.Sprintf("%04d-%02d-15", y, mo)
			case strings.Contains(value, "下旬"):
				result["period_text"] = "下旬"
				result["estimated_date"] = fmt.Sprintf("%04d-%02d-25", y, mo)
			default:
				result["estimated_date"] = fmt.Sprintf("%04d-%02d-01", y, mo)
			}
		}
	} else {
		result["value"] = value
	}

	if containsAny(value, "完成済", "竣工済", "竣工") {
		result["completed"] = true
	}
	if strings.Contains(value, "予定") {
		result["tentative"] = true
	}
	if strings.Contains(value, "即") {
		result["immediate"] = true
		if value == "即日" {
			result = Result{"immediate": true}
		}
	}
	return withPeriod(result, period)
}

// CleanseDeliveryDate parses 引渡時期 fields, which mix dates with immediate,
// negotiable and after-contract phrasings.
func CleanseDeliveryDate(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	if containsAny(value, "即引渡可", "即入居可") {
		result := Result{"type": "immediate"}
		if strings.Contains(value, "手続") {
			result["note"] = "諸手続き完了後"
		} else if m := asteriskNote.FindStringSubmatch(value); m != nil {
			result["note"] = strings.TrimSpace(m[1])
		}
		return withPeriod(result, period)
	}
	if value == "相談" || value == "要相談" {
		return withPeriod(Result{"type": "negotiable"}, period)
	}
	if m := contractPattern.FindStringSubmatch(value); m != nil {
		months, _ := strconv.ParseFloat(m[1], 64)
		return withPeriod(Result{"type": "after_contract", "months": months}, period)
	}

	y, mo, d, ok := calendarDate(value)
	if !ok {
		return withPeriod(Result{"value": value}, period)
	}
	result := Result{"year": y, "month": mo}
	if d > 0 {
		result["day"] = d
		result["estimated_date"] = fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
		return withPeriod(result, period)
	}
	if strings.Contains(value, "予定") {
		result["is_planned"] = true
	}
	switch {
	case containsAny(value, "上旬", "初旬"):
		result["period_text"] = "上旬"
		result["estimated_date"] = fmt.Sprintf("%04d-%02d-05", y, mo)
	case strings.Contains(value, "中旬"):
		result["period_text"] = "中旬"
		result["estimated_date"] = fmt.Sprintf("%04d-%02d-15", y, mo)
	case strings.Contains(value, "下旬"):
		result["period_text"] = "下旬"
		result["estimated_date"] = fmt.Sprintf("%04d-%02d-25", y, mo)
	case strings.Contains(value, "末"):
		last := lastDayOfMonth(y, mo)
		result["period_text"] = "末"
		result["estimated_date"] = fmt.Sprintf("%04d-%02d-%02d", y, mo, last)
	default:
		result["estimated_date"] = fmt.Sprintf("%04d-%02d-01", y, mo)
	}
	return withPeriod(result, period)
}

// CleanseExpiryDate normalizes 取引条件有効期限 to an ISO date string.
func CleanseExpiryDate(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return withPeriod(Result{"date": nil}, period)
	}

	if m := ymdPattern.FindStringSubmatch(value); m != nil {
		return withPeriod(Result{"date": isoDate(m[1], m[2], m[3])}, period)
	}
	if m := slashYMD.FindStringSubmatch(value); m != nil {
		return withPeriod(Result{"date": isoDate(m[1], m[2], m[3])}, period)
	}
	if y, mo, d, ok := parseEraDate(value); ok {
		return withPeriod(Result{"date": fmt.Sprintf("%04d-%02d-%02d", y, mo, d)}, period)
	}
	return withPeriod(Result{"date": value}, period)
}

// calendarDate extracts a Gregorian year/month and optional day from text,
// falling back to era notation. day is 0 when the text gave no day.
func calendarDate(value string) (year, month, day int, ok bool) {
	if m := ymdPattern.FindStringSubmatch(value); m != nil {
		return atoi(m[1]), atoi(m[2]), atoi(m[3]), true
	}
	if m := ymPattern.FindStringSubmatch(value); m != nil {
		return atoi(m[1]), atoi(m[2]), 0, true
	}
	if m := eraDatePattern.FindStringSubmatch(normalizeDigits(value)); m != nil {
		y, mo, d, _ := parseEraDate(value)
		if m[4] == "" {
			d = 0
		}
		return y, mo, d, true
	}
	return 0, 0, 0, false
}

func isoDate(y, m, d string) string {
	return fmt.Sprintf("%04d-%02d-%02d", atoi(y), atoi(m), atoi(d))
}

func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
