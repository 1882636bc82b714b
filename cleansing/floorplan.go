package cleansing

import (
	"regexp"
	"strings"
)

var (
	planPricePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)万円`)
	planPriceGeneric = regexp.MustCompile(`(\d+(?:\.\d+)?)(円|千円|億円)`)
	planAreaPatterns = []struct {
		pattern *regexp.Regexp
		unit    string
	}{
		{regexp.MustCompile(`(\d+(?:\.\d+)?)m2`), "m2"},
		{regexp.MustCompile(`(\d+(?:\.\d+)?)㎡`), "m2"},
		{regexp.MustCompile(`(\d+(?:\.\d+)?)平米`), "m2"},
		{regexp.MustCompile(`(\d+(?:\.\d+)?)坪`), "坪"},
	}
)

// CleanseFloorPlan parses 間取り図 caption rows, tab or space separated:
// optional building number followed by 価格/間取り/土地面積/建物面積 triples.
func CleanseFloorPlan(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	var parts []string
	if strings.Contains(value, "\t") {
		parts = strings.Split(value, "\t")
	} else {
		parts = strings.Fields(value)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	result := Result{}
	if len(parts) > 0 && parts[0] != "" && !strings.HasPrefix(parts[0], "価格") {
		result["building_number"] = parts[0]
	}

	for i := 0; i+2 < len(parts); i++ {
		if parts[i+1] != "：" {
			continue
		}
		switch parts[i] {
		case "価格":
			result["price"] = planPrice(parts[i+2])
		case "間取り":
			if parts[i+2] != "" {
				result["layout"] = parts[i+2]
			}
		case "土地面積":
			result["land_area"] = planArea(parts[i+2])
		case "建物面積":
			result["building_area"] = planArea(parts[i+2])
		}
	}

	_, hasBuilding := result["building_number"]
	if len(result) == 0 || (len(result) == 1 && hasBuilding) {
		result = Result{"raw_value": value}
	}
	return withPeriod(result, period)
}

func planPrice(text string) Result {
	if m := planPricePattern.FindStringSubmatch(text); m != nil {
		return Result{"value": parseNumber(m[1]), "unit": "万円"}
	}
	if m := planPriceGeneric.FindStringSubmatch(text); m != nil {
		return Result{"value": parseNumber(m[1]), "unit": m[2]}
	}
	return Result{"raw_value": text}
}

func planArea(text string) Result {
	for _, ap := range planAreaPatterns {
		if m := ap.pattern.FindStringSubmatch(text); m != nil {
			return Result{"value": parseNumber(m[1]), "unit": ap.unit}
		}
	}
	return Result{"raw_value": text}
}
