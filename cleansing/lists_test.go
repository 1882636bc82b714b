package cleansing

import "testing"

func TestCleanseZoning_Multiple(t *testing.T) {
	result := CleanseZoning("第一種低層住居専用地域、準工業地域", "用途地域", nil)
	values, ok := result["values"].([]any)
	if !ok || len(values) != 2 {
		t.Fatalf("expected 2 zones, got %v", result["values"])
	}
	if values[0] != "第一種低層住居専用地域" || values[1] != "準工業地域" {
		t.Fatalf("unexpected zones %v", values)
	}
}

func TestCleanseZoning_Empty(t *testing.T) {
	result := CleanseZoning("-", "用途地域", nil)
	values, ok := result["values"].([]any)
	if !ok || len(values) != 0 {
		t.Fatalf("expected empty list, got %v", result["values"])
	}
}

func TestCleanseRestrictions_Split(t *testing.T) {
	result := CleanseRestrictions("高度地区・準防火地域", "制限事項", nil)
	restrictions, ok := result["restrictions"].([]any)
	if !ok || len(restrictions) != 2 {
		t.Fatalf("expected 2 restrictions, got %v", result["restrictions"])
	}
}

func TestCleanseBuildingCoverage_Pair(t *testing.T) {
	result := CleanseBuildingCoverage("60％・200％", "建ぺい率・容積率", nil)
	if result["building_coverage"] != 60.0 {
		t.Fatalf("expected coverage 60, got %v", result["building_coverage"])
	}
	if result["floor_area_ratio"] != 200.0 {
		t.Fatalf("expected floor area ratio 200, got %v", result["floor_area_ratio"])
	}
	if result["unit"] != "%" {
		t.Fatalf("expected unit %%, got %v", result["unit"])
	}
}

func TestCleanseBuildingCoverage_SinglePercent(t *testing.T) {
	result := CleanseBuildingCoverage("建ぺい率60％", "建ぺい率・容積率", nil)
	if result["raw_value"] != "建ぺい率60％" {
		t.Fatalf("expected raw_value for lone percentage, got %v", result)
	}
}
