package cleansing

import "testing"

func TestCleanseReform_ItemizedAreas(t *testing.T) {
	result := CleanseReform("2023年3月完了　水回り設備交換：キッチン・浴室　内装リフォーム：壁紙/床", "リフォーム", nil)
	if result["completion_date"] != "2023-03" {
		t.Fatalf("expected 2023-03, got %v", result["completion_date"])
	}
	if result["has_reform"] != true {
		t.Fatalf("expected has_reform, got %v", result)
	}
	if result["is_scheduled"] != false {
		t.Fatalf("expected not scheduled, got %v", result)
	}
	areas := result["reform_areas"].(Result)
	water := areas["water_facilities"].([]any)
	if len(water) != 2 || water[0] != "キッチン" || water[1] != "浴室" {
		t.Fatalf("expected water items, got %v", water)
	}
	interior := areas["interior"].([]any)
	if len(interior) != 2 || interior[0] != "壁紙" {
		t.Fatalf("expected interior items, got %v", interior)
	}
}

func TestCleanseReform_Scheduled(t *testing.T) {
	result := CleanseReform("2026年1月リフォーム完了予定", "リフォーム", nil)
	if result["completion_date"] != "2026-01" {
		t.Fatalf("expected 2026-01, got %v", result["completion_date"])
	}
	if result["is_scheduled"] != true {
		t.Fatalf("expected scheduled, got %v", result)
	}
	other := result["reform_areas"].(Result)["other"].([]any)
	if len(other) != 1 || other[0] != "リフォーム実施" {
		t.Fatalf("expected generic reform marker, got %v", other)
	}
}

func TestCleanseReform_NoReform(t *testing.T) {
	result := CleanseReform("現況渡し", "リフォーム", nil)
	if result["has_reform"] != false {
		t.Fatalf("expected no reform, got %v", result)
	}
	if result["raw_value"] != "現況渡し" {
		t.Fatalf("expected raw value kept, got %v", result["raw_value"])
	}
}

func TestCleanseReform_Empty(t *testing.T) {
	result := CleanseReform("-", "リフォーム", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
}
