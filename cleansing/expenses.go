package cleansing

import (
	"regexp"
	"strings"
)

// expenseCategories is the closed set of fee lines worth keeping from その他
// 経費 fields, tried in order. Lines outside these categories are dropped,
// and a field where nothing matches nulls out entirely.
var expenseCategories = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"駐車場", expensePattern(`.*駐車場[^：]*`)},
	{"地代", expensePattern(`.*地代`)},
	{"敷金", expensePattern(`敷金`)},
	{"保証金", expensePattern(`.*保証金[^：]*`)},
	{"解体", expensePattern(`.*解体[^：]*`)},
	{"災害積立", expensePattern(`災害積立[^：]*`)},
	{"メンテナンス", expensePattern(`.*メンテナンス[^：]*`)},
	{"通信費", expensePattern(`.*(?:インターネット|ネット|ＣＡＴＶ|CATV|TV|テレビ|フレッツ)[^：]*`)},
	{"管理費", expensePattern(`管理一時金[^：]*`)},
	{"利用料", expensePattern(`.*(?:利用料|使用料|専用利用料)[^：]*`)},
	{"自治会費", expensePattern(`.*(?:町会費|町内会費|自治会費)[^：]*`)},
	{"セキュリティ", expensePattern(`.*(?:セキュリティ|防犯|警備)[^：]*`)},
	{"コミュニティ", expensePattern(`.*(?:コミュニティ|会費)[^：]*`)},
	{"サービス", expensePattern(`.*(?:サービス)[^：]*`)},
}

func expensePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(` + name + `)[:：]\s*([0-9万,～〜円未定]+)(?:[／/](.+))?`)
}

var (
	expenseSplitPattern = regexp.MustCompile(`[、,]`)
	parenTail           = regexp.MustCompile(`[（(].*`)
)

// CleanseOtherExpenses extracts the recurring fee lines listed under その他
// 経費目安, one entry per recognized category.
func CleanseOtherExpenses(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	expenses := []any{}
	for _, item := range expenseSplitPattern.Split(value, -1) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		for _, cat := range expenseCategories {
			m := cat.pattern.FindStringSubmatch(item)
			if m == nil {
				continue
			}
			entry := expenseEntry(cat.name, strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3]))
			if entry != nil {
				expenses = append(expenses, entry)
			}
			break
		}
	}

	if len(expenses) == 0 {
		return nullValue(period)
	}
	return withPeriod(Result{"expenses": expenses}, period)
}

func expenseEntry(category, name, amountStr, freqStr string) Result {
	if category == "通信費" {
		name = normalizeCommsName(name)
	}
	entry := Result{"name": name, "category": category}

	if strings.Contains(amountStr, "未定") {
		entry["is_undefined"] = true
		entry["value"] = nil
		entry["unit"] = "円"
		entry["frequency"] = undefinedFrequency(freqStr)
		return entry
	}

	amounts := expenseAmounts(amountStr)
	if len(amounts) == 0 {
		return nil
	}
	if len(amounts) == 1 {
		entry["value"] = amounts[0]
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
		entry["min"] = lo
		entry["max"] = hi
		entry["value"] = float64(lo+hi) / 2
	}
	entry["unit"] = "円"

	// Only the word right after the amount decides the frequency; bracketed
	// notes further along are ignored.
	frequency := "月"
	if freqStr != "" {
		first := freqStr
		if fields := strings.Fields(freqStr); len(fields) > 0 {
			first = fields[0]
		}
		first = parenTail.ReplaceAllString(first, "")
		switch {
		case strings.Contains(first, "一括"):
			frequency = "一括"
		case strings.Contains(first, "月"):
			frequency = "月"
		case strings.Contains(first, "年"):
			frequency = "年"
		}
	}
	entry["frequency"] = frequency
	return entry
}

func normalizeCommsName(name string) string {
	switch {
	case containsAny(name, "インターネット", "ネット", "NET"):
		return "インターネット"
	case containsAny(name, "ＣＡＴＶ", "CATV"):
		return "CATV"
	case containsAny(name, "TV", "テレビ"):
		return "テレビ"
	case strings.Contains(name, "フレッツ"):
		return "フレッツ光"
	}
	return name
}

func undefinedFrequency(freqStr string) string {
	if freqStr == "" {
		return "月"
	}
	switch {
	case strings.Contains(freqStr, "一括"):
		return "一括"
	case strings.Contains(freqStr, "月"):
		return "月"
	case strings.Contains(freqStr, "年"):
		return "年"
	}
	return freqStr
}

// expenseAmounts parses an amount span that may be a single figure or a
// range, deduplicating the 万-and-円 spellings of the same digits.
func expenseAmounts(amountStr string) []int {
	if containsAny(amountStr, "～", "〜") {
		var amounts []int
		pairs := manYenAmount.FindAllStringSubmatch(amountStr, -1)
		rest := amountStr
		for _, m := range pairs {
			amounts = append(amounts, atoi(m[1])*10000+atoi(m[2]))
			rest = strings.ReplaceAll(rest, m[0], "")
		}
		manOnly := manOnlyAmount.FindAllStringSubmatch(rest, -1)
		for _, m := range manOnly {
			amounts = append(amounts, atoi(commaReplacer.Replace(m[1]))*10000)
			rest = strings.ReplaceAll(rest, m[0], "")
		}
		for _, m := range yenOnlyAmount.FindAllStringSubmatch(rest, -1) {
			v := atoi(commaReplacer.Replace(m[1]))
			if v >= 1000000 {
				continue
			}
			dup := false
			for _, a := range amounts {
				if a == v {
					dup = true
					break
				}
			}
			if !dup {
				amounts = append(amounts, v)
			}
		}
		return amounts
	}

	if m := manYenAmount.FindStringSubmatch(amountStr); m != nil {
		return []int{atoi(m[1])*10000 + atoi(m[2])}
	}
	if m := manOnlyAmount.FindStringSubmatch(amountStr); m != nil {
		return []int{atoi(commaReplacer.Replace(m[1])) * 10000}
	}
	if m := yenOnlyAmount.FindStringSubmatch(amountStr); m != nil {
		if v := atoi(commaReplacer.Replace(m[1])); v > 0 {
			return []int{v}
		}
	}
	return nil
}
