package keymap

import (
	"fmt"
	"regexp"
	"strings"
)

// englishNames maps raw labels to the snake_case names used for downstream
// column-like access. Unlisted labels fall back to a lowercased slug.
var englishNames = map[string]string{
	"所在地":      "address",
	"交通":       "access",
	"総戸数":      "total_units",
	"用途地域":     "zoning",
	"敷地の権利形態":  "land_rights",
	"販売スケジュール": "sales_schedule",
	"完成時期":     "completion_date",
	"引渡可能時期":   "delivery_date",
	"今回販売戸数":   "units_for_sale",

	"価格":      "price",
	"予定価格":    "planned_price",
	"最多価格帯":   "most_common_price_range",
	"予定最多価格帯": "planned_price",
	"予定価格帯":   "planned_price",

	"管理費":    "management_fee",
	"管理準備金":  "management_reserve",
	"修繕積立金":  "repair_fund",
	"修繕積立基金": "repair_reserve",
	"その他諸経費": "other_expenses",

	"間取り":     "layout",
	"専有面積":    "exclusive_area",
	"その他面積":   "other_area",
	"バルコニー面積": "balcony_area",

	"構造・階建": "structure",
	"建物階":   "building_floors",
	"階":     "floor",
	"向き":    "direction",
	"築年月":   "built_date",
	"建築年月":  "construction_date",

	"土地面積":     "land_area",
	"建物面積":     "building_area",
	"建ぺい率・容積率": "coverage_ratio",
	"私道負担・道路":  "road_burden",
	"接道状況":     "road_access",
	"地目":       "land_category",
	"権利":       "rights",
	"現況":       "current_status",

	"駐車場":     "parking",
	"設備・サービス": "facilities",
	"条件":      "conditions",
	"備考":      "remarks",
	"制限事項":    "restrictions",

	"管理":       "management_company",
	"施工":       "construction_company",
	"会社情報":     "company_info",
	"不動産会社ガイド": "real_estate_guide",

	"その他":      "other",
	"取引条件有効期限": "transaction_validity",
	"物件番号":     "property_number",
	"取引態様":     "transaction_type",
	"情報公開日":    "publication_date",
	"次回更新予定日":  "next_update_date",
}

var japaneseCharPattern = regexp.MustCompile(`[\p{Han}\p{Hiragana}\p{Katakana}]`)

// EnglishName maps a raw label to its snake_case name, keeping the sales
// phase as a _phaseN suffix. A label with no mapping becomes a lowercased
// underscore slug; anything still containing Japanese falls back to slugging
// the raw label so the name stays ASCII-safe only when a mapping exists.
func EnglishName(label string) string {
	cleaned := mapPhaseKey(label)
	if japaneseCharPattern.MatchString(cleaned) {
		cleaned = slugify(label)
	}
	return cleaned
}

func mapPhaseKey(label string) string {
	if m := phasePattern.FindStringSubmatch(label); m != nil {
		base := strings.TrimSuffix(label, m[0])
		if name, ok := englishNames[base]; ok {
			return fmt.Sprintf("%s_phase%s", name, m[1])
		}
		normalized := strings.ReplaceAll(strings.ToLower(base), " ", "_")
		return fmt.Sprintf("%s_phase%s", normalized, m[1])
	}
	if name, ok := englishNames[label]; ok {
		return name
	}
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}

func slugify(label string) string {
	cleaned := strings.ToLower(label)
	cleaned = keyNoisePattern.ReplaceAllString(cleaned, "")
	return keySpacePattern.ReplaceAllString(cleaned, "_")
}
