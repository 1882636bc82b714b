package cleansing

import (
	"regexp"
	"strings"
)

var (
	prefecturePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(東京都)`),
		regexp.MustCompile(`^(北海道)`),
		regexp.MustCompile(`^(京都府|大阪府)`),
		regexp.MustCompile(`^(.{2,3}県)`),
	}
	tokyoWardPattern       = regexp.MustCompile(`^(.+?区)`)
	hokkaidoOfficePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(.+?支庁)`),
		regexp.MustCompile(`^(.+?振興局)`),
	}
	districtPattern      = regexp.MustCompile(`^(.+?郡)`)
	districtTownPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(.+?町)`),
		regexp.MustCompile(`^(.+?村)`),
	}
	municipalityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(.+?市)`),
		regexp.MustCompile(`^(.+?区)`),
		regexp.MustCompile(`^(.+?町)`),
		regexp.MustCompile(`^(.+?村)`),
	}
)

// CleanseAddress splits a Japanese address into its administrative hierarchy:
// prefecture, then ward/district/municipality, then the town or village under
// a 郡, with whatever follows kept verbatim as remaining.
func CleanseAddress(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	parsed, ok := parseAddressStructure(value)
	if !ok {
		return withPeriod(Result{"raw": value, "parse_failed": true}, period)
	}
	return withPeriod(parsed, period)
}

func parseAddressStructure(value string) (Result, bool) {
	var prefecture string
	for _, p := range prefecturePatterns {
		if m := p.FindStringSubmatch(value); m != nil {
			prefecture = m[1]
			break
		}
	}
	if prefecture == "" {
		return nil, false
	}
	rest := value[len(prefecture):]

	result := Result{
		"raw":                value,
		"prefecture":         prefecture,
		"secondary_division": nil,
		"secondary_type":     nil,
		"tertiary_division":  nil,
		"tertiary_type":      nil,
		"remaining":          nil,
	}

	// Special wards end the structured parse; everything after the ward is
	// street-level detail.
	if prefecture == "東京都" {
		if m := tokyoWardPattern.FindStringSubmatch(rest); m != nil {
			result["secondary_division"] = m[1]
			result["secondary_type"] = "特別区"
			rest = rest[len(m[1]):]
			finishAddress(result, rest)
			return result, true
		}
	}

	if prefecture == "北海道" {
		for _, p := range hokkaidoOfficePatterns {
			if m := p.FindStringSubmatch(rest); m != nil {
				result["secondary_division"] = m[1]
				result["secondary_type"] = "支庁・振興局"
				rest = rest[len(m[1]):]
				break
			}
		}
	}

	if m := districtPattern.FindStringSubmatch(rest); m != nil {
		result["secondary_division"] = m[1]
		result["secondary_type"] = "郡"
		rest = rest[len(m[1]):]
		for _, p := range districtTownPatterns {
			if t := p.FindStringSubmatch(rest); t != nil {
				result["tertiary_division"] = t[1]
				if strings.Contains(t[1], "町") {
					result["tertiary_type"] = "町"
				} else {
					result["tertiary_type"] = "村"
				}
				rest = rest[len(t[1]):]
				break
			}
		}
	} else {
		for _, p := range municipalityPatterns {
			if m := p.FindStringSubmatch(rest); m != nil {
				division := m[1]
				result["secondary_division"] = division
				switch {
				case strings.HasSuffix(division, "市"):
					result["secondary_type"] = "市"
				case strings.HasSuffix(division, "区"):
					result["secondary_type"] = "区"
				case strings.HasSuffix(division, "町"):
					result["secondary_type"] = "町"
				case strings.HasSuffix(division, "村"):
					result["secondary_type"] = "村"
				}
				rest = rest[len(division):]
				break
			}
		}
	}

	finishAddress(result, rest)
	return result, true
}

// finishAddress fills remaining, hierarchy and division_types from whatever
// the level extraction left behind.
func finishAddress(result Result, rest string) {
	if rest = strings.TrimSpace(rest); rest != "" {
		result["remaining"] = rest
	}

	hierarchy := []string{result["prefecture"].(string)}
	if s, ok := result["secondary_division"].(string); ok {
		hierarchy = append(hierarchy, s)
	}
	if t, ok := result["tertiary_division"].(string); ok {
		hierarchy = append(hierarchy, t)
	}
	result["hierarchy"] = strings.Join(hierarchy, " -> ")

	var divisionTypes []string
	if s, ok := result["secondary_type"].(string); ok {
		divisionTypes = append(divisionTypes, s)
	}
	if t, ok := result["tertiary_type"].(string); ok {
		divisionTypes = append(divisionTypes, t)
	}
	if len(divisionTypes) > 0 {
		result["division_types"] = strings.Join(divisionTypes, " -> ")
	}
}
