package keymap

import (
	"regexp"
	"strings"

	"estate_cleanser/schema"
)

// ConverterKind names a converter family. The set is closed: the cleansing
// package registers exactly one function per kind, and routing decisions are
// stored as these names rather than function references.
type ConverterKind string

const (
	ConvPrice                 ConverterKind = "price"
	ConvPriceBand             ConverterKind = "price_band"
	ConvArea                  ConverterKind = "area"
	ConvMultipleArea          ConverterKind = "multiple_area"
	ConvLayout                ConverterKind = "layout"
	ConvDate                  ConverterKind = "date"
	ConvDeliveryDate          ConverterKind = "delivery_date"
	ConvExpiryDate            ConverterKind = "expiry_date"
	ConvManagementFee         ConverterKind = "management_fee"
	ConvOtherExpenses         ConverterKind = "other_expenses"
	ConvUtilityCost           ConverterKind = "utility_cost"
	ConvNumber                ConverterKind = "number"
	ConvUnits                 ConverterKind = "units"
	ConvBoolean               ConverterKind = "boolean"
	ConvText                  ConverterKind = "text"
	ConvForceNull             ConverterKind = "force_null"
	ConvAccess                ConverterKind = "access"
	ConvZoning                ConverterKind = "zoning"
	ConvRestrictions          ConverterKind = "restrictions"
	ConvCompanyInfo           ConverterKind = "company_info"
	ConvAddress               ConverterKind = "address"
	ConvFloorStructure        ConverterKind = "floor_structure"
	ConvBuildingStructure     ConverterKind = "building_structure"
	ConvParking               ConverterKind = "parking"
	ConvSurroundingFacilities ConverterKind = "surrounding_facilities"
	ConvLandUse               ConverterKind = "land_use"
	ConvFloorPlan             ConverterKind = "floor_plan"
	ConvBuildingCoverage      ConverterKind = "building_coverage"
	ConvFeaturePickup         ConverterKind = "feature_pickup"
	ConvReform                ConverterKind = "reform"
	ConvRating                ConverterKind = "rating"
)

// Mapping is one routing table entry. CleanedName "" means the label is
// recognized but its value is dropped to null without a canonical name.
type Mapping struct {
	CleanedName string
	Converter   ConverterKind
}

// Resolution is the routing outcome for one raw label. Schema is nil when
// the cleaned name has no registered shape.
type Resolution struct {
	CleanedName string
	KeyName     string
	Converter   ConverterKind
	Period      *int
	Schema      *schema.Schema
}

var phasePattern = regexp.MustCompile(`_第(\d+)期$`)

// exactMappings routes known labels directly. Built once, never mutated.
var exactMappings = map[string]Mapping{
	"所在地":    {"住所", ConvAddress},
	"住所":     {"住所", ConvAddress},
	"物件所在地":  {"住所", ConvAddress},
	"現地案内所":  {"住所", ConvAddress},
	"モデルルーム": {"住所", ConvAddress},

	"交通":     {"交通", ConvAccess},
	"交通アクセス": {"交通アクセス", ConvAccess},

	"価格":   {"価格", ConvPrice},
	"予定価格": {"価格", ConvPrice},

	"最多価格帯":   {"価格帯", ConvPriceBand},
	"予定最多価格帯": {"価格帯", ConvPriceBand},
	"予定価格帯":   {"価格帯", ConvPriceBand},

	"専有面積":    {"専有面積", ConvArea},
	"その他面積":   {"その他面積", ConvMultipleArea},
	"バルコニー面積": {"その他面積", ConvMultipleArea},
	"土地面積":    {"土地面積", ConvArea},
	"建物面積":    {"建物面積", ConvArea},
	"敷地面積":    {"土地面積", ConvArea},

	"間取り": {"間取り", ConvLayout},

	"完成時期":        {"築年月", ConvDate},
	"引渡時期":        {"引渡時期", ConvDeliveryDate},
	"引渡可能時期":      {"引渡時期", ConvDeliveryDate},
	"引き渡し時期":      {"引渡時期", ConvDeliveryDate},
	"築年月":         {"築年月", ConvDate},
	"建築年月":        {"築年月", ConvDate},
	"完成時期（築年月）":   {"築年月", ConvDate},
	"完成時期(築年月)":   {"築年月", ConvDate},
	"造成完了時期":      {"築年月", ConvDate},

	"総戸数":    {"戸数", ConvUnits},
	"今回販売戸数": {"戸数", ConvUnits},
	"販売戸数":   {"戸数", ConvUnits},
	"販売区画数":  {"戸数", ConvUnits},
	"総区画数":   {"戸数", ConvUnits},

	"建物階数": {"階数", ConvNumber},
	"所在階":  {"所在階", ConvNumber},
	"向き":   {"向き", ConvText},

	"管理費":    {"管理費", ConvManagementFee},
	"修繕積立金":  {"修繕積立金", ConvManagementFee},
	"修繕積立基金": {"修繕積立基金", ConvManagementFee},
	"管理準備金":  {"管理準備金", ConvManagementFee},

	"その他諸経費": {"他経費", ConvOtherExpenses},
	"他諸経費":   {"他経費", ConvOtherExpenses},
	"他経費":    {"他経費", ConvOtherExpenses},
	"諸費用":    {"他経費", ConvOtherExpenses},

	"用途地域": {"用途地域", ConvZoning},

	"制限事項":    {"制限事項", ConvRestrictions},
	"その他制限事項": {"制限事項", ConvRestrictions},

	"取引条件有効期限": {"取引条件有効期限", ConvExpiryDate},

	"会社情報": {"会社情報", ConvCompanyInfo},
	"会社概要": {"", ConvForceNull},

	"目安光熱費": {"目安光熱費", ConvUtilityCost},

	"特徴ピックアップ": {"特徴", ConvFeaturePickup},
	"物件の特徴":    {"", ConvForceNull},

	"リフォーム": {"リフォーム", ConvReform},

	"構造・階建て":     {"構造階建", ConvBuildingStructure},
	"構造・工法":      {"構造階建", ConvBuildingStructure},
	"所在階/構造・階建": {"構造階建", ConvFloorStructure},

	"駐車場": {"駐車場", ConvParking},

	"敷地権利形態":     {"敷地権利形態", ConvForceNull},
	"敷地の権利形態":    {"", ConvForceNull},
	"土地の権利形態":    {"", ConvForceNull},
	"販売スケジュール":   {"", ConvForceNull},
	"関連リンク":      {"", ConvForceNull},
	"お問い合せ先":     {"", ConvForceNull},
	"問い合わせ先":     {"", ConvForceNull},
	"周辺施設":       {"", ConvForceNull},
	"周辺環境":       {"周辺施設", ConvSurroundingFacilities},
	"イベント情報":     {"", ConvForceNull},
	"その他概要・特記事項": {"", ConvForceNull},
	"情報提供日":      {"", ConvForceNull},
	"次回更新日":      {"", ConvForceNull},
	"担当者より":      {"", ConvForceNull},
	"プレゼント情報":    {"", ConvForceNull},
	"お知らせ／その他":   {"", ConvForceNull},
	"カーナビご利用の方":  {"", ConvForceNull},
	"見学可能な日程":    {"", ConvForceNull},
	"間取り図":       {"間取り図", ConvFloorPlan},

	"物件名":       {"物件名", ConvText},
	"施工":        {"施工会社", ConvText},
	"施工\n":      {"施工会社", ConvText},
	"管理":        {"管理会社", ConvText},
	"不動産会社ガイド":  {"", ConvForceNull},
	"物件番号":      {"物件番号", ConvText},
	"取引態様":      {"取引態様", ConvText},
	"地目":        {"地目", ConvLandUse},
	"私道負担・道路":   {"", ConvForceNull},
	"建ぺい率・容積率":  {"建ぺい率容積率", ConvBuildingCoverage},
	"建ぺい率･容積率":  {"建ぺい率容積率", ConvBuildingCoverage},
	"土地状況":      {"土地状況", ConvText},
	"建築条件":      {"", ConvForceNull},
	"エネルギー消費性能": {"エネルギー消費性能", ConvRating},
	"断熱性能":      {"断熱性能", ConvRating},
}

// Resolve routes a raw label to its cleaned name, converter kind, and sales
// phase. The same label always resolves identically regardless of phase
// suffix, which only feeds the Period field.
func Resolve(label string) Resolution {
	base := label
	var period *int
	if m := phasePattern.FindStringSubmatch(label); m != nil {
		base = strings.TrimSuffix(label, m[0])
		n := atoi(m[1])
		period = &n
	}

	cleaned, kind := routeBase(base, period)
	res := Resolution{
		CleanedName: cleaned,
		KeyName:     EnglishName(label),
		Converter:   kind,
		Period:      period,
	}
	if cleaned != "" {
		if s, ok := schema.Lookup(cleaned); ok {
			res.Schema = s
		}
	}
	return res
}

func routeBase(base string, period *int) (string, ConverterKind) {
	if strings.Contains(base, " ヒント") {
		return "", ConvForceNull
	}
	if base == "その他" {
		return "", ConvForceNull
	}
	if base == "会社情報" && period == nil {
		return "", ConvForceNull
	}

	if m, ok := exactMappings[base]; ok {
		return m.CleanedName, m.Converter
	}

	switch {
	case strings.Contains(base, "価格"):
		return "価格", ConvPrice
	case strings.Contains(base, "面積"):
		if containsAny(base, "その他", "バルコニー") {
			return "その他面積", ConvMultipleArea
		}
		return "面積", ConvArea
	case strings.Contains(base, "間取り"):
		return "間取り", ConvLayout
	case containsAny(base, "時期", "年月", "完成", "竣工", "築年", "建築年"):
		if strings.Contains(base, "引渡") {
			return "引渡時期", ConvDeliveryDate
		}
		return "完成時期", ConvDate
	case containsAny(base, "戸数", "区画"):
		return "戸数", ConvUnits
	case strings.Contains(base, "準備金"):
		return "管理費", ConvManagementFee
	case containsAny(base, "管理費", "積立"):
		return "管理費", ConvManagementFee
	case strings.Contains(base, "階") && containsAny(base, "所在", "建物"):
		return "階数", ConvNumber
	case strings.Contains(base, "交通"):
		return "交通", ConvAccess
	case strings.Contains(base, "制限"):
		return "制限事項", ConvRestrictions
	case strings.Contains(base, "会社"):
		return "会社情報", ConvCompanyInfo
	}

	return normalizeKeyName(base), ConvText
}

var (
	keyNoisePattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	keySpacePattern = regexp.MustCompile(`\s+`)
)

// normalizeKeyName strips punctuation from unrecognized labels and joins the
// remaining words with underscores, keeping Japanese text as is.
func normalizeKeyName(key string) string {
	normalized := keyNoisePattern.ReplaceAllString(key, "")
	return keySpacePattern.ReplaceAllString(normalized, "_")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
