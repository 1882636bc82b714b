package cleansing

import (
	"strings"
	"unicode/utf8"
)

// maxValueLen is the cutoff above which a raw value is treated as boilerplate
// rather than data.
const maxValueLen = 500

// sentinels are raw values that mean "no data" across every field family.
var sentinels = map[string]struct{}{
	"":     {},
	"-":    {},
	"－":    {},
	"ー":    {},
	"未定":   {},
	"未設定":  {},
	"なし":   {},
	"無し":   {},
	"N/A":  {},
}

// boilerplate marks promotional or procedural text that carries no field data.
// A single hit anywhere in the value suppresses the whole field.
var boilerplate = []string{
	"■支払い例",
	"■ローンのご案内",
	"提携ローン",
	"※ローンは一定要件該当者が対象",
	"※金利は",
	"融資限度額",
	"事務手数料",
	"保証料",
	"適用される金利は融資実行時",
	"お申込みの際には、お認印",
	"収入証明書",
	"本人確認書類",
	"運転免許証",
	"健康保険証",
	"パスポート",
	"先着順販売のため販売済の場合",
	"販売開始まで契約または予約の申し込み",
	"申し込み順位の確保につながる行為は一切できません",
	"確定情報は新規分譲広告において明示",
	"物件データは第",
	"期以降の全販売対象住戸",
	"のものを表記",
	"受付時間／",
	"定休日／",
	"受付場所／",
	"マンションギャラリー",
}

// IsSentinel reports whether the trimmed value is one of the placeholder
// strings sources emit for missing data.
func IsSentinel(value string) bool {
	_, ok := sentinels[strings.TrimSpace(value)]
	return ok
}

// ShouldSuppress reports whether a raw value should be cleansed to the null
// shape: placeholder sentinels, oversized blobs, and known boilerplate.
func ShouldSuppress(value string) bool {
	if IsSentinel(value) {
		return true
	}
	if utf8.RuneCountInString(value) > maxValueLen {
		return true
	}
	for _, marker := range boilerplate {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}
