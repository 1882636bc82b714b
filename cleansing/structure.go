package cleansing

import (
	"regexp"
	"sort"
	"strings"
)

// structureCodes normalizes common structure spellings to their short codes.
var structureCodes = map[string]string{
	"RC":            "RC",
	"SRC":           "SRC",
	"S":             "S",
	"鉄骨":            "S",
	"鉄筋コンクリート":      "RC",
	"鉄骨鉄筋コンクリート":    "SRC",
	"LS":            "LS",
	"LGS":           "LGS",
	"軽量鉄骨":          "LS",
	"W":             "W",
	"木造":            "W",
	"2×4":           "2x4",
	"2×6":           "2x6",
	"ツーバイフォー":       "2x4",
	"ツーバイシックス":      "2x6",
	"CB":            "CB",
	"RCB":           "RCB",
	"コンクリートブロック":    "CB",
	"鉄筋コンクリートブロック":  "RCB",
	"PC":            "PC",
	"ALC":           "ALC",
	"プレストレストコンクリート": "PC",
}

// structureCodeKeys is structureCodes' keys longest-first for partial
// matching, built once at init.
var structureCodeKeys = func() []string {
	keys := make([]string, 0, len(structureCodes))
	for k := range structureCodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}()

var (
	floorStructPattern = regexp.MustCompile(`^(\d+)階/(.+?)(\d+)階(?:地下(\d+)階)?建(.*)$`)
	bldgPatterns       = []*regexp.Regexp{
		regexp.MustCompile(`^(\d+)階/(.+?)(\d+)階(?:地下(\d+)階)?建.*?$`),
		regexp.MustCompile(`^(.+?)(\d+)階(?:地下(\d+)階)?建.*?$`),
		regexp.MustCompile(`^地上(\d+)階.*?(.+)$`),
		regexp.MustCompile(`^構造：(.+?)\s+工法：.*?\s+地上階：(\d+)階.*?$`),
		regexp.MustCompile(`^(.+?)/地上(\d+)階.*?$`),
		regexp.MustCompile(`^(.+?)　地上(\d+)階.*?$`),
		regexp.MustCompile(`^(.+?)、\s*(\d+)階建.*?$`),
	}
	partialStructPattern = regexp.MustCompile(`一部(.+?)(?:$|\s)`)
	exteriorPattern      = regexp.MustCompile(`(サイディング貼|アスファルトシングル葺|タイル貼|モルタル塗|リシン掻落)`)
	fullBracketPattern   = regexp.MustCompile(`（(.+?)）`)
)

// normalizeStructureCode maps a structure spelling to its short code,
// longest partial match first. Composite spellings joined with ・ or + pass
// through untouched.
func normalizeStructureCode(structure string) string {
	structure = strings.TrimSpace(structure)
	if strings.Contains(structure, "・") || strings.Contains(structure, "+") {
		return structure
	}
	if code, ok := structureCodes[structure]; ok {
		return code
	}
	for _, key := range structureCodeKeys {
		if strings.Contains(structure, key) {
			return structureCodes[key]
		}
	}
	return structure
}

// CleanseFloorStructure parses 所在階/構造・階建 fields of the shape
// 3階/RC5階建, with optional basement and partial-structure suffixes.
func CleanseFloorStructure(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || ShouldSuppress(value) {
		return nullValue(period)
	}

	m := floorStructPattern.FindStringSubmatch(value)
	if m == nil {
		return withPeriod(Result{"raw_value": value}, period)
	}

	result := Result{
		"floor":        atoi(m[1]),
		"structure":    normalizeStructureCode(m[2]),
		"total_floors": atoi(m[3]),
	}
	if m[4] != "" {
		result["basement_floors"] = atoi(m[4])
	} else {
		result["basement_floors"] = 0
	}

	option := strings.TrimSpace(m[5])
	if strings.Contains(option, "一部") {
		if pm := partialStructPattern.FindStringSubmatch(option); pm != nil {
			result["partial_structure"] = normalizeStructureCode(pm[1])
		}
	} else if option != "" {
		result["note"] = option
	}
	return withPeriod(result, period)
}

// CleanseBuildingStructure parses 構造・階建て fields. Seven layout patterns
// are tried in order, then a bare structure code, then raw passthrough.
func CleanseBuildingStructure(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	var (
		structurePart string
		totalFloors   int
		basement      int
		propertyFloor = -1
	)

	switch {
	case bldgPatterns[0].MatchString(value):
		m := bldgPatterns[0].FindStringSubmatch(value)
		propertyFloor = atoi(m[1])
		structurePart = m[2]
		totalFloors = atoi(m[3])
		if m[4] != "" {
			basement = atoi(m[4])
		}
	case bldgPatterns[1].MatchString(value):
		m := bldgPatterns[1].FindStringSubmatch(value)
		structurePart = m[1]
		totalFloors = atoi(m[2])
		if m[3] != "" {
			basement = atoi(m[3])
		}
	case bldgPatterns[2].MatchString(value):
		m := bldgPatterns[2].FindStringSubmatch(value)
		totalFloors = atoi(m[1])
		structurePart = strings.TrimSpace(m[2])
	case bldgPatterns[3].MatchString(value):
		m := bldgPatterns[3].FindStringSubmatch(value)
		structurePart = m[1]
		totalFloors = atoi(m[2])
	case bldgPatterns[4].MatchString(value):
		m := bldgPatterns[4].FindStringSubmatch(value)
		structurePart = m[1]
		totalFloors = atoi(m[2])
	case bldgPatterns[5].MatchString(value):
		m := bldgPatterns[5].FindStringSubmatch(value)
		structurePart = m[1]
		totalFloors = atoi(m[2])
	case bldgPatterns[6].MatchString(value):
		m := bldgPatterns[6].FindStringSubmatch(value)
		structurePart = m[1]
		totalFloors = atoi(m[2])
	default:
		if normalized := normalizeStructureCode(value); normalized != value {
			return withPeriod(Result{"structure": normalized}, period)
		}
		return withPeriod(Result{"raw_value": value}, period)
	}

	result := Result{
		"structure":       normalizeStructureCode(structurePart),
		"total_floors":    totalFloors,
		"basement_floors": basement,
	}
	if propertyFloor >= 0 {
		result["floor"] = propertyFloor
	}

	if strings.Contains(value, "一部") {
		if pm := partialStructPattern.FindStringSubmatch(value); pm != nil {
			result["partial_structure"] = normalizeStructureCode(pm[1])
		}
	}

	var extras []string
	for _, bm := range fullBracketPattern.FindAllStringSubmatch(value, -1) {
		extras = append(extras, bm[1])
	}
	if em := exteriorPattern.FindStringSubmatch(value); em != nil {
		extras = append(extras, em[1])
	}
	if len(extras) > 0 {
		result["note"] = strings.Join(extras, "、")
	}
	return withPeriod(result, period)
}
