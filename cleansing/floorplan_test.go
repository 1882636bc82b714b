package cleansing

import "testing"

func TestCleanseFloorPlan_CaptionRow(t *testing.T) {
	result := CleanseFloorPlan("A号棟\t価格\t：\t3980万円\t間取り\t：\t3LDK\t建物面積\t：\t98.5㎡", "間取り図", nil)
	if result["building_number"] != "A号棟" {
		t.Fatalf("expected A号棟, got %v", result["building_number"])
	}
	price := result["price"].(Result)
	if price["value"] != 3980.0 || price["unit"] != "万円" {
		t.Fatalf("expected 3980万円, got %v", price)
	}
	if result["layout"] != "3LDK" {
		t.Fatalf("expected 3LDK, got %v", result["layout"])
	}
	area := result["building_area"].(Result)
	if area["value"] != 98.5 || area["unit"] != "m2" {
		t.Fatalf("expected 98.5 m2, got %v", area)
	}
}

func TestCleanseFloorPlan_LandArea(t *testing.T) {
	result := CleanseFloorPlan("土地面積\t：\t120.3坪", "間取り図", nil)
	land := result["land_area"].(Result)
	if land["value"] != 120.3 || land["unit"] != "坪" {
		t.Fatalf("expected 120.3坪, got %v", land)
	}
}

func TestCleanseFloorPlan_Unparsed(t *testing.T) {
	result := CleanseFloorPlan("自由設計対応", "間取り図", nil)
	if result["raw_value"] != "自由設計対応" {
		t.Fatalf("expected raw value fallback, got %v", result)
	}
	if _, ok := result["building_number"]; ok {
		t.Fatalf("expected no building number, got %v", result)
	}
}

func TestCleanseFloorPlan_Empty(t *testing.T) {
	result := CleanseFloorPlan("-", "間取り図", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
}
