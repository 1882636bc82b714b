package cleansing

import (
	"regexp"
	"strings"
)

// facilityCategories is the fixed set of category labels the listing pages
// emit before each nearby-facility entry.
var facilityCategories = []string{
	"スーパー", "コンビニ", "ドラッグストア", "ホームセンター",
	"ショッピングセンター", "小学校", "中学校", "高校・高専",
	"幼稚園・保育園", "病院", "郵便局", "銀行", "図書館", "公園",
	"役所", "警察署・交番", "駅", "その他環境",
}

var (
	facilityTabSplit  = regexp.MustCompile(`\t+`)
	facilityEntry     = regexp.MustCompile(`([^：]+)：徒歩(\d+)分[（(](\d+)(?:ｍ|m)[）)]`)
	facilityInline    = regexp.MustCompile(`([^\s]+)\s+([^：]+)：徒歩(\d+)分[（(](\d+)(?:ｍ|m)[）)]`)
	facilityBareEntry = regexp.MustCompile(`^([^まで]+)まで(\d+)(?:ｍ|m)$`)
)

// normalizeFacilityCategory folds page category labels onto canonical names.
func normalizeFacilityCategory(category string) string {
	if category == "その他環境" {
		return "その他"
	}
	return category
}

// CleanseSurroundingFacilities parses 周辺施設 fields: tab-separated pairs of
// category and 施設名：徒歩N分（Mｍ） entries, plus the bare 〜までNm form.
// Entries sharing a facility name are collapsed to the first.
func CleanseSurroundingFacilities(value string, rawKey string, period *int) Result {
	value = strings.TrimSpace(value)
	if value == "" || value == "-" || ShouldSuppress(value) {
		return nullValue(period)
	}

	facilities := []any{}
	seen := map[string]struct{}{}
	add := func(category any, name string, walkingTime any, distance int) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		facilities = append(facilities, Result{
			"category":     category,
			"name":         name,
			"walking_time": walkingTime,
			"distance":     distance,
			"unit":         "m",
		})
	}

	if m := facilityBareEntry.FindStringSubmatch(value); m != nil {
		add(nil, strings.TrimSpace(m[1]), nil, atoi(m[2]))
		return withPeriod(Result{"facilities": facilities}, period)
	}

	segments := facilityTabSplit.Split(value, -1)
	for i := 0; i < len(segments); i++ {
		segment := strings.TrimSpace(segments[i])
		if segment == "" {
			continue
		}
		if isFacilityCategory(segment) && i+1 < len(segments) {
			if m := facilityEntry.FindStringSubmatch(strings.TrimSpace(segments[i+1])); m != nil {
				add(normalizeFacilityCategory(segment), strings.TrimSpace(m[1]), atoi(m[2]), atoi(m[3]))
			}
			i++
			continue
		}
		for _, m := range facilityInline.FindAllStringSubmatch(segment, -1) {
			add(normalizeFacilityCategory(strings.TrimSpace(m[1])), strings.TrimSpace(m[2]), atoi(m[3]), atoi(m[4]))
		}
	}
	return withPeriod(Result{"facilities": facilities}, period)
}

func isFacilityCategory(s string) bool {
	for _, c := range facilityCategories {
		if s == c {
			return true
		}
	}
	return false
}
