package cleansing

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	parenPattern    = regexp.MustCompile(`[（(][^）)]*[）)]`)
	notePattern     = regexp.MustCompile(`[（(]([^）)]*)[）)]`)
	okuManPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)億(?:(\d+(?:\.\d+)?)万)?`)
	bareManPattern  = regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)万`)
	manYenPattern   = regexp.MustCompile(`(\d+(?:,\d{3})*)万(\d+(?:,\d{3})*)円`)
	manOnlyPattern  = regexp.MustCompile(`(\d+(?:,\d{3})*)万円`)
	anyNumPattern   = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?`)
	rangeSeparators = []string{"～", "〜"}
)

// CleansePrice parses listing prices quoted in 円, 千円, 万円 or 億円, single
// values and ranges alike. Range output carries min, max and their midpoint
// under value.
func CleansePrice(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" {
		return nullValue(period)
	}
	if strings.Contains(value, "未定") {
		return withPeriod(Result{"is_undefined": true, "value": nil}, period)
	}
	if ShouldSuppress(value) {
		return nullValue(period)
	}
	if strings.Contains(value, "要相談") {
		return withPeriod(Result{"type": "negotiable"}, period)
	}

	result := Result{}

	// Parenthesized spans are notes, never the main price.
	mainText := parenPattern.ReplaceAllString(value, "")

	if strings.Contains(mainText, "億") {
		prices := okuPricesInMan(mainText)
		if len(prices) > 0 {
			result["unit"] = "万円"
			applyPriceSpread(result, prices)
		}
	} else {
		var prices []float64
		if strings.Contains(mainText, "万") {
			prices = manPrices(mainText)
			result["unit"] = "万円"
		} else {
			tokens := anyNumPattern.FindAllString(value, -1)
			if len(tokens) == 0 {
				result["value"] = value
				return withPeriod(result, period)
			}
			unit := "円"
			if strings.Contains(value, "千円") {
				unit = "千円"
			}
			result["unit"] = unit
			for _, tok := range tokens {
				prices = append(prices, parseNumber(tok))
			}
		}
		if containsAny(mainText, rangeSeparators...) && len(prices) == 1 {
			result["value"] = prices[0]
		} else if len(prices) > 0 {
			applyPriceSpread(result, prices)
		}
	}

	if m := notePattern.FindStringSubmatch(value); m != nil {
		note := strings.TrimSpace(m[1])
		if !containsAny(note, "支払シミュレーション", "□") {
			result["note"] = note
		}
	}
	if strings.Contains(value, "参考価格") {
		result["tentative"] = true
	}
	return withPeriod(result, period)
}

// okuPricesInMan collects every price mentioned in an 億-bearing span,
// expressed in 万円. A bare 万 figure only counts when it is not part of an
// 億X万 combination, which the preceding-rune check enforces.
func okuPricesInMan(text string) []float64 {
	var prices []float64
	for _, m := range okuManPattern.FindAllStringSubmatch(text, -1) {
		total := parseNumber(m[1]) * 10000
		if m[2] != "" {
			total += parseNumber(m[2])
		}
		prices = append(prices, total)
	}
	for _, loc := range bareManPattern.FindAllStringSubmatchIndex(text, -1) {
		if prev := precedingRune(text, loc[0]); prev == '億' || (prev >= '0' && prev <= '9') {
			continue
		}
		prices = append(prices, parseNumber(text[loc[2]:loc[3]]))
	}
	return prices
}

// manPrices collects 万円-denominated prices, handling the X万Y円 form and
// avoiding double counts when the same 万 figure appears in both forms.
func manPrices(text string) []float64 {
	var prices []float64
	pairs := manYenPattern.FindAllStringSubmatch(text, -1)
	for _, m := range pairs {
		prices = append(prices, parseNumber(m[1])+parseNumber(m[2])/10000)
	}
	for _, m := range manOnlyPattern.FindAllStringSubmatch(text, -1) {
		seen := false
		for _, pair := range pairs {
			if m[1] == pair[1] {
				seen = true
				break
			}
		}
		if !seen {
			prices = append(prices, parseNumber(m[1]))
		}
	}
	return prices
}

// applyPriceSpread writes either a single value or a min/max/midpoint triple.
func applyPriceSpread(result Result, prices []float64) {
	if len(prices) == 1 {
		result["value"] = prices[0]
		return
	}
	lo, hi := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	result["min"] = lo
	result["max"] = hi
	result["value"] = (lo + hi) / 2
}

func precedingRune(s string, i int) rune {
	if i == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}
