package keymap

import "testing"

func TestResolve_ExactMapping(t *testing.T) {
	res := Resolve("所在地")
	if res.CleanedName != "住所" {
		t.Fatalf("expected 住所, got %s", res.CleanedName)
	}
	if res.Converter != ConvAddress {
		t.Fatalf("expected address converter, got %s", res.Converter)
	}
	if res.KeyName != "address" {
		t.Fatalf("expected key name address, got %s", res.KeyName)
	}
	if res.Schema == nil {
		t.Fatalf("expected registered schema for 住所")
	}
}

func TestResolve_PhaseSuffix(t *testing.T) {
	res := Resolve("価格_第2期")
	if res.CleanedName != "価格" {
		t.Fatalf("expected 価格, got %s", res.CleanedName)
	}
	if res.Converter != ConvPrice {
		t.Fatalf("expected price converter, got %s", res.Converter)
	}
	if res.Period == nil || *res.Period != 2 {
		t.Fatalf("expected period 2, got %v", res.Period)
	}
	if res.KeyName != "price_phase2" {
		t.Fatalf("expected price_phase2, got %s", res.KeyName)
	}
}

func TestResolve_PhaseDoesNotChangeRoute(t *testing.T) {
	plain := Resolve("専有面積")
	phased := Resolve("専有面積_第10期")
	if plain.CleanedName != phased.CleanedName {
		t.Fatalf("cleaned name diverged: %s vs %s", plain.CleanedName, phased.CleanedName)
	}
	if plain.Converter != phased.Converter {
		t.Fatalf("converter diverged: %s vs %s", plain.Converter, phased.Converter)
	}
	if phased.Period == nil || *phased.Period != 10 {
		t.Fatalf("expected period 10, got %v", phased.Period)
	}
}

func TestResolve_FallbackCascade(t *testing.T) {
	cases := []struct {
		label   string
		cleaned string
		conv    ConverterKind
	}{
		{"販売価格", "価格", ConvPrice},
		{"建物面積（延床）", "面積", ConvArea},
		{"バルコニー面積等", "その他面積", ConvMultipleArea},
		{"竣工時期", "完成時期", ConvDate},
		{"引渡時期（予定）", "引渡時期", ConvDeliveryDate},
		{"販売区画", "戸数", ConvUnits},
		{"管理準備金等", "管理費", ConvManagementFee},
		{"建物階数等", "階数", ConvNumber},
		{"交通機関", "交通", ConvAccess},
		{"法令に基づく制限", "制限事項", ConvRestrictions},
		{"分譲会社", "会社情報", ConvCompanyInfo},
	}
	for _, c := range cases {
		res := Resolve(c.label)
		if res.CleanedName != c.cleaned {
			t.Fatalf("%s: expected cleaned name %s, got %s", c.label, c.cleaned, res.CleanedName)
		}
		if res.Converter != c.conv {
			t.Fatalf("%s: expected converter %s, got %s", c.label, c.conv, res.Converter)
		}
	}
}

func TestResolve_ForceNullLabels(t *testing.T) {
	for _, label := range []string{"会社概要", "物件の特徴", "販売スケジュール", "その他", "周辺施設"} {
		res := Resolve(label)
		if res.CleanedName != "" {
			t.Fatalf("%s: expected empty cleaned name, got %s", label, res.CleanedName)
		}
		if res.Converter != ConvForceNull {
			t.Fatalf("%s: expected force_null, got %s", label, res.Converter)
		}
	}
}

func TestResolve_HintSuffix(t *testing.T) {
	res := Resolve("価格 ヒント")
	if res.Converter != ConvForceNull {
		t.Fatalf("expected force_null for hint label, got %s", res.Converter)
	}
}

func TestResolve_CompanyInfoNeedsPhase(t *testing.T) {
	plain := Resolve("会社情報")
	if plain.Converter != ConvForceNull {
		t.Fatalf("expected force_null without phase, got %s", plain.Converter)
	}
	phased := Resolve("会社情報_第1期")
	if phased.CleanedName != "会社情報" || phased.Converter != ConvCompanyInfo {
		t.Fatalf("expected company_info with phase, got %s/%s", phased.CleanedName, phased.Converter)
	}
}

func TestResolve_UnknownLabel(t *testing.T) {
	res := Resolve("特記すべき事項")
	if res.Converter != ConvText {
		t.Fatalf("expected text fallback, got %s", res.Converter)
	}
	if res.CleanedName != "特記すべき事項" {
		t.Fatalf("expected normalized label, got %s", res.CleanedName)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	labels := []string{"価格_第3期", "専有面積", "完成時期", "会社情報_第2期", "未知のラベル"}
	for _, label := range labels {
		first := Resolve(label)
		for i := 0; i < 5; i++ {
			again := Resolve(label)
			if again.CleanedName != first.CleanedName || again.Converter != first.Converter {
				t.Fatalf("%s: routing not stable", label)
			}
		}
	}
}

func TestEnglishName_Mapped(t *testing.T) {
	if got := EnglishName("総戸数"); got != "total_units" {
		t.Fatalf("expected total_units, got %s", got)
	}
	if got := EnglishName("管理費"); got != "management_fee" {
		t.Fatalf("expected management_fee, got %s", got)
	}
}

func TestEnglishName_Phase(t *testing.T) {
	if got := EnglishName("価格_第2期"); got != "price_phase2" {
		t.Fatalf("expected price_phase2, got %s", got)
	}
	if got := EnglishName("最多価格帯_第3期"); got != "most_common_price_range_phase3" {
		t.Fatalf("expected most_common_price_range_phase3, got %s", got)
	}
}

func TestEnglishName_UnmappedJapanese(t *testing.T) {
	got := EnglishName("謎の項目")
	if got != "謎の項目" {
		t.Fatalf("expected slug of raw label, got %s", got)
	}
}
