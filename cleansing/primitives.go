package cleansing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// TsuboPerSquareMeter converts floor area between m² and the traditional
// tsubo unit (1 tsubo = 3.30579 m²).
const TsuboPerSquareMeter = 3.30579

var (
	numberPattern     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	commaReplacer     = strings.NewReplacer(",", "", "，", "")
	fullWidthReplacer = strings.NewReplacer(
		"０", "0", "１", "1", "２", "2", "３", "3", "４", "4",
		"５", "5", "６", "6", "７", "7", "８", "8", "９", "9",
		"．", ".", "〜", "～",
	)
	eraDatePattern = regexp.MustCompile(`(令和|平成|昭和)(\d{1,2}|元)年(?:(\d{1,2})月)?(?:(\d{1,2})日)?`)
)

// eraOffsets holds the Gregorian year each era's year 1 maps onto, minus one.
var eraOffsets = map[string]int{
	"令和": 2018,
	"平成": 1988,
	"昭和": 1925,
}

// normalizeDigits converts full-width digits and separators to ASCII and
// strips thousands separators so the numeric patterns apply uniformly.
func normalizeDigits(s string) string {
	return commaReplacer.Replace(fullWidthReplacer.Replace(s))
}

// firstNumber extracts the first decimal number from text after separator
// normalization. The second return is false when the text holds no digits.
func firstNumber(s string) (float64, bool) {
	token := numberPattern.FindString(normalizeDigits(s))
	if token == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// firstNumberToken returns the first numeric token and whether the source
// wrote it with a decimal point. Converters that must keep the int/float
// distinction of the source text use this instead of firstNumber.
func firstNumberToken(s string) (string, bool) {
	token := numberPattern.FindString(normalizeDigits(s))
	return token, token != ""
}

// numericValue converts a token from firstNumberToken into an int64 or
// float64 depending on whether the source carried a decimal point.
func numericValue(token string) any {
	if strings.Contains(token, ".") {
		n, _ := strconv.ParseFloat(token, 64)
		return n
	}
	n, _ := strconv.ParseInt(token, 10, 64)
	return n
}

// parseNumber parses a single already-extracted numeric token.
func parseNumber(token string) float64 {
	n, _ := strconv.ParseFloat(commaReplacer.Replace(token), 64)
	return n
}

// MonetaryUnit describes the money unit detected in a text span.
type MonetaryUnit struct {
	Label      string
	Multiplier float64
}

// monetaryUnits is ordered longest-first so 万円 wins over 円.
var monetaryUnits = []MonetaryUnit{
	{"億円", 100000000},
	{"万円", 10000},
	{"千円", 1000},
	{"円", 1},
}

// detectMonetaryUnit returns the money unit named in the text, defaulting to
// 万円 which is how listing prices are quoted when the unit is implicit.
func detectMonetaryUnit(s string) MonetaryUnit {
	for _, u := range monetaryUnits {
		if strings.Contains(s, u.Label) {
			return u
		}
	}
	return MonetaryUnit{"万円", 10000}
}

// detectAreaUnit normalizes the area unit found in text. Anything that is not
// explicitly 坪 is reported as m².
func detectAreaUnit(s string) string {
	if strings.Contains(s, "坪") && !containsAny(s, "m2", "m²", "㎡", "平米") {
		return "坪"
	}
	return "m²"
}

// SquareMetersToTsubo converts an m² figure to tsubo, rounded to 2 places.
func SquareMetersToTsubo(m2 float64) float64 {
	return roundTo(m2/TsuboPerSquareMeter, 2)
}

// parseEraDate converts a 令和/平成/昭和 date to Gregorian year, month, day.
// Month and day default to 1 when absent. ok is false when the text holds no
// era date.
func parseEraDate(s string) (year, month, day int, ok bool) {
	m := eraDatePattern.FindStringSubmatch(normalizeDigits(s))
	if m == nil {
		return 0, 0, 0, false
	}
	eraYear := 1
	if m[2] != "元" {
		eraYear, _ = strconv.Atoi(m[2])
	}
	year = eraOffsets[m[1]] + eraYear
	month, day = 1, 1
	if m[3] != "" {
		month, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		day, _ = strconv.Atoi(m[4])
	}
	return year, month, day, true
}

// undefinedMarkers are the phrases sources use for "amount not decided yet".
var undefinedMarkers = []string{"金額未定", "価格未定", "未確定", "未決定", "要相談", "応相談"}

// isUndefinedMarker reports whether the value announces an undecided amount
// rather than a parse failure.
func isUndefinedMarker(s string) bool {
	if strings.TrimSpace(s) == "未定" {
		return true
	}
	return containsAny(s, undefinedMarkers...)
}

// isNegotiableMarker reports whether the value defers the amount to
// negotiation.
func isNegotiableMarker(s string) bool {
	return containsAny(s, "要相談", "相談")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// roundTo rounds to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// mean returns the arithmetic mean of a non-empty slice.
func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}
