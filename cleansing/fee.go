package cleansing

import (
	"regexp"
	"strings"
)

var (
	feeAmountPattern  = regexp.MustCompile(`(\d+(?:万\d+)?(?:,\d{3})*)円`)
	feeStagePattern   = regexp.MustCompile(`^当初月額(\d+(?:万\d+)?(?:,\d{3})*)円／月、(.+)$`)
	feeLimitedPattern = regexp.MustCompile(`^(\d+(?:万\d+)?(?:,\d{3})*)円／月（([^）]+のみ\d+(?:万\d+)?(?:,\d{3})*円／月)）$`)
	feeParenPattern   = regexp.MustCompile(`^(\d+(?:万\d+)?(?:,\d{3})*)円／月（([^）]+)）(.*)$`)
	feeRevisePattern  = regexp.MustCompile(`(\d+(?:万\d+)?(?:,\d{3})*)円／月[（(]([^）)]*(?:年目|年後|カ月目|カ月後)より[^）)]*)[）)]`)
	manYenAmount      = regexp.MustCompile(`(\d+)万(\d+)円`)
	manOnlyAmount     = regexp.MustCompile(`(\d+(?:,\d{3})*)万円`)
	yenOnlyAmount     = regexp.MustCompile(`(\d+(?:,\d{3})*)円`)
	splitManAmount    = regexp.MustCompile(`^(\d+)万(\d+)$`)
)

// workStyles maps phrases describing the building manager's duty pattern,
// checked in order.
var workStyles = []struct{ marker, style string }{
	{"通勤", "通勤"},
	{"巡回", "巡回"},
	{"常駐", "常駐"},
	{"管理員なし", "管理員なし"},
	{"勤務形態未定", "未定"},
}

// CleanseManagementFee parses monthly-fee style fields (管理費, 修繕積立金
// and their lump-sum siblings). The cascade peels off the special single-fee
// layouts first, then falls back to collecting every amount in the text.
func CleanseManagementFee(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}
	if value == "無" {
		return withPeriod(Result{"value": 0}, period)
	}

	result := Result{}
	if strings.Contains(value, "自主管理") {
		result["management_type"] = "自主"
	} else if strings.Contains(value, "一部委託") {
		result["management_type"] = "一部委託"
	} else if strings.Contains(value, "委託") {
		result["management_type"] = "委託"
	}
	for _, w := range workStyles {
		if strings.Contains(value, w.marker) {
			result["work_style"] = w.style
			break
		}
	}

	fixed := func(amount int, frequency, note string) Result {
		result["value"] = amount
		result["unit"] = "円"
		result["frequency"] = frequency
		if note != "" {
			result["note"] = note
		}
		return withPeriod(result, period)
	}

	// A ※ note after a single amount ends the parse early.
	if idx := strings.Index(value, "※"); idx >= 0 {
		mainPart := strings.TrimSpace(value[:idx])
		notePart := strings.TrimSpace(value[idx+len("※"):])
		if m := feeAmountPattern.FindStringSubmatch(mainPart); m != nil {
			freq := "一括"
			if strings.Contains(mainPart, "月") {
				freq = "月"
			}
			return fixed(feeAmount(m[1]), freq, notePart)
		}
	}
	if m := feeStagePattern.FindStringSubmatch(value); m != nil {
		return fixed(feeAmount(m[1]), "月", m[2])
	}
	if m := feeLimitedPattern.FindStringSubmatch(value); m != nil {
		return fixed(feeAmount(m[1]), "月", m[2])
	}
	if m := feeParenPattern.FindStringSubmatch(value); m != nil && strings.Contains(value, "、") {
		return fixed(feeAmount(m[1]), "月", "（"+m[2]+"）"+m[3])
	}
	if m := feeRevisePattern.FindStringSubmatch(value); m != nil {
		return fixed(feeAmount(m[1]), "月", m[2])
	}

	var amounts []int
	useCollected := false
	mainPart := value

	if strings.Contains(value, "、") {
		parts := strings.Split(value, "、")
		if hasForeignFeeItems(parts) {
			mainPart = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				notes := make([]string, 0, len(parts)-1)
				for _, p := range parts[1:] {
					notes = append(notes, strings.TrimSpace(p))
				}
				result["note"] = strings.Join(notes, "、")
			}
		} else {
			// Same fee item quoted per building section: keep every amount
			// and fold the section notes together.
			var notes []string
			for _, part := range parts {
				parens := bracketPattern.FindAllStringSubmatch(strings.TrimSpace(part), -1)
				if len(parens) > 0 {
					note := parens[len(parens)-1][1]
					if containsAny(note, "修繕", "積立", "基金", "準備金", "住宅", "団地", "街区") {
						notes = append(notes, note)
					}
				}
			}
			if len(notes) > 0 {
				result["note"] = strings.Join(notes, "・")
			}
			for _, part := range parts {
				amounts = append(amounts, collectFeeAmounts(strings.TrimSpace(part))...)
			}
			useCollected = true
		}
	} else {
		for _, m := range bracketPattern.FindAllStringSubmatch(value, -1) {
			note := strings.TrimSpace(m[1])
			if note == "" {
				continue
			}
			if !containsAny(note, "自主管理", "委託", "通勤", "巡回", "常駐", "管理員", "勤務形態", "一括") {
				result["note"] = note
			}
		}
		if before, breakdown, ok := strings.Cut(value, "【内訳】"); ok {
			mainPart = strings.TrimSpace(before)
			result["breakdown"] = breakdown
		}
	}

	if isUndefinedMarker(value) && !strings.Contains(value, "勤務形態未定") {
		result["is_undefined"] = true
		result["value"] = nil
		return withPeriod(result, period)
	}

	if !useCollected {
		amounts = collectFeeAmounts(mainPart)
	}
	if len(amounts) == 0 {
		result["value"] = value
		return withPeriod(result, period)
	}

	if len(amounts) == 1 {
		result["value"] = amounts[0]
	} else {
		lo, hi := amounts[0], amounts[0]
		for _, a := range amounts[1:] {
			if a < lo {
				lo = a
			}
			if a > hi {
				hi = a
			}
		}
		result["min"] = lo
		result["max"] = hi
		result["value"] = float64(lo+hi) / 2
	}
	result["unit"] = "円"

	switch {
	case strings.Contains(value, "一括"):
		result["frequency"] = "一括"
	case strings.Contains(value, "月"):
		result["frequency"] = "月"
	case strings.Contains(value, "年"):
		result["frequency"] = "年"
	case containsAny(rawKey, "準備金", "基金") || containsAny(value, "準備金", "基金", "一時金", "一括払い"):
		result["frequency"] = "一括"
	default:
		result["frequency"] = "月"
	}
	return withPeriod(result, period)
}

// hasForeignFeeItems reports whether later comma parts belong to a different
// fee item than the first part, in which case only the first part is parsed.
// The 住宅一部 + 全体 pairing of 管理準備金 lines stays integrated.
func hasForeignFeeItems(parts []string) bool {
	for _, part := range parts[1:] {
		if containsAny(part, "修繕積立基金", "全体修繕", "団地") {
			return true
		}
		if strings.Contains(part, "管理準備金") {
			first := parts[0]
			integrated := (strings.Contains(first, "住宅一部") && strings.Contains(part, "全体")) ||
				(strings.Contains(first, "一部") && strings.Contains(part, "全体"))
			if !integrated {
				return true
			}
		}
	}
	return false
}

// collectFeeAmounts pulls every yen amount from a span, counting each digit
// run once even when it matches both the X万Y円 and plain 円 patterns.
func collectFeeAmounts(part string) []int {
	var amounts []int
	pairs := manYenAmount.FindAllStringSubmatch(part, -1)
	for _, m := range pairs {
		amounts = append(amounts, atoi(m[1])*10000+atoi(m[2]))
	}
	for _, m := range manOnlyAmount.FindAllStringSubmatch(part, -1) {
		dup := false
		for _, p := range pairs {
			if m[1] == p[1] {
				dup = true
				break
			}
		}
		if !dup {
			amounts = append(amounts, atoi(commaReplacer.Replace(m[1]))*10000)
		}
	}
	for _, m := range yenOnlyAmount.FindAllStringSubmatch(part, -1) {
		dup := false
		for _, p := range pairs {
			if m[1] == p[2] {
				dup = true
				break
			}
		}
		if !dup {
			amounts = append(amounts, atoi(commaReplacer.Replace(m[1])))
		}
	}
	return amounts
}

// feeAmount parses an amount token that may carry a 万 infix, e.g. 1万7744.
func feeAmount(token string) int {
	if strings.Contains(token, "万") {
		if m := splitManAmount.FindStringSubmatch(token); m != nil {
			return atoi(m[1])*10000 + atoi(m[2])
		}
		return atoi(commaReplacer.Replace(strings.ReplaceAll(token, "万", ""))) * 10000
	}
	return atoi(commaReplacer.Replace(token))
}
