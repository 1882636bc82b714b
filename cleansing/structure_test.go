package cleansing

import "testing"

func TestCleanseFloorStructure_Basic(t *testing.T) {
	result := CleanseFloorStructure("3階/RC5階建", "所在階/構造・階建", nil)
	if result["floor"] != 3 {
		t.Fatalf("expected floor 3, got %v", result["floor"])
	}
	if result["structure"] != "RC" {
		t.Fatalf("expected RC, got %v", result["structure"])
	}
	if result["total_floors"] != 5 {
		t.Fatalf("expected 5 floors, got %v", result["total_floors"])
	}
	if result["basement_floors"] != 0 {
		t.Fatalf("expected basement 0, got %v", result["basement_floors"])
	}
}

func TestCleanseFloorStructure_Basement(t *testing.T) {
	result := CleanseFloorStructure("2階/SRC10階地下1階建", "所在階/構造・階建", nil)
	if result["structure"] != "SRC" {
		t.Fatalf("expected SRC, got %v", result["structure"])
	}
	if result["total_floors"] != 10 || result["basement_floors"] != 1 {
		t.Fatalf("unexpected floors %v", result)
	}
}

func TestCleanseFloorStructure_Unparsed(t *testing.T) {
	result := CleanseFloorStructure("メゾネット", "所在階/構造・階建", nil)
	if result["raw_value"] != "メゾネット" {
		t.Fatalf("expected raw_value kept, got %v", result)
	}
}

func TestCleanseBuildingStructure_Spelled(t *testing.T) {
	result := CleanseBuildingStructure("鉄筋コンクリート14階建", "構造・階建て", nil)
	if result["structure"] != "RC" {
		t.Fatalf("expected RC, got %v", result["structure"])
	}
	if result["total_floors"] != 14 {
		t.Fatalf("expected 14 floors, got %v", result["total_floors"])
	}
}

func TestCleanseBuildingStructure_WoodFrame(t *testing.T) {
	result := CleanseBuildingStructure("木造2階建", "構造・階建て", nil)
	if result["structure"] != "W" {
		t.Fatalf("expected W, got %v", result["structure"])
	}
	if result["total_floors"] != 2 {
		t.Fatalf("expected 2 floors, got %v", result["total_floors"])
	}
}

func TestCleanseBuildingStructure_BareCode(t *testing.T) {
	result := CleanseBuildingStructure("鉄骨鉄筋コンクリート", "構造・工法", nil)
	if result["structure"] != "SRC" {
		t.Fatalf("expected bare code, got %v", result)
	}
	if _, ok := result["total_floors"]; ok {
		t.Fatalf("bare code must not invent floors: %v", result)
	}
}
