package cleansing

import "testing"

func TestCleanseNumber_WithUnit(t *testing.T) {
	result := CleanseNumber("45戸", "総戸数", nil)
	if result["value"] != int64(45) {
		t.Fatalf("expected 45, got %v (%T)", result["value"], result["value"])
	}
	if result["unit"] != "戸" {
		t.Fatalf("expected unit 戸, got %v", result["unit"])
	}
}

func TestCleanseNumber_Decimal(t *testing.T) {
	result := CleanseNumber("14.5階", "階数", nil)
	if result["value"] != 14.5 {
		t.Fatalf("expected 14.5, got %v", result["value"])
	}
}

func TestCleanseNumber_Comma(t *testing.T) {
	result := CleanseNumber("1,200戸", "総戸数", nil)
	if result["value"] != int64(1200) {
		t.Fatalf("expected 1200, got %v", result["value"])
	}
}

func TestCleanseNumber_NoDigits(t *testing.T) {
	result := CleanseNumber("平置き", "階数", nil)
	if result["value"] != "平置き" {
		t.Fatalf("expected raw passthrough, got %v", result)
	}
}

func TestCleanseUnits_Total(t *testing.T) {
	result := CleanseUnits("45戸", "総戸数", nil)
	if result["value"] != int64(45) {
		t.Fatalf("expected 45, got %v", result["value"])
	}
	if result["is_total"] != true {
		t.Fatalf("expected is_total, got %v", result)
	}
}

func TestCleanseUnits_CurrentSaleWithNote(t *testing.T) {
	result := CleanseUnits("10戸（うちモデルルーム1戸）", "今回販売戸数", nil)
	if result["value"] != int64(10) {
		t.Fatalf("expected 10, got %v", result["value"])
	}
	if result["is_current_sale"] != true {
		t.Fatalf("expected is_current_sale, got %v", result)
	}
	if result["note"] != "うちモデルルーム1戸" {
		t.Fatalf("expected note, got %v", result["note"])
	}
}

func TestCleanseBoolean_Values(t *testing.T) {
	if result := CleanseBoolean("有", "ペット", nil); result["value"] != true {
		t.Fatalf("expected true for 有, got %v", result["value"])
	}
	if result := CleanseBoolean("×", "ペット", nil); result["value"] != false {
		t.Fatalf("expected false for ×, got %v", result["value"])
	}
	if result := CleanseBoolean("条件付き", "ペット", nil); result["value"] != "条件付き" {
		t.Fatalf("expected raw passthrough, got %v", result["value"])
	}
}

func TestCleanseText_Basic(t *testing.T) {
	result := CleanseText("  南東向き ", "向き", nil)
	if result["value"] != "南東向き" {
		t.Fatalf("expected trimmed text, got %v", result["value"])
	}
}

func TestCleanseText_Boilerplate(t *testing.T) {
	result := CleanseText("■支払い例：月々8万円から", "備考", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil for boilerplate, got %v", result["value"])
	}
}

func TestCleanseForceNull(t *testing.T) {
	period := 1
	result := CleanseForceNull("販売スケジュールのお知らせ", "販売スケジュール", &period)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result["value"])
	}
	if result["period"] != 1 {
		t.Fatalf("expected period 1, got %v", result["period"])
	}
}
