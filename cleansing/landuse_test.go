package cleansing

import "testing"

func TestCleanseLandUse_MultipleWithNote(t *testing.T) {
	result := CleanseLandUse("宅地・山林（一部農地）", "地目", nil)
	values := result["values"].([]any)
	if len(values) != 2 || values[0] != "宅地" || values[1] != "山林" {
		t.Fatalf("expected 宅地 and 山林, got %v", values)
	}
	if result["note"] != "一部農地" {
		t.Fatalf("expected note, got %v", result["note"])
	}
}

func TestCleanseLandUse_FoldsOntoBasicType(t *testing.T) {
	result := CleanseLandUse("雑種地ほか", "地目", nil)
	values := result["values"].([]any)
	if len(values) != 1 || values[0] != "雑種地" {
		t.Fatalf("expected 雑種地, got %v", values)
	}
}

func TestCleanseLandUse_Dedupes(t *testing.T) {
	result := CleanseLandUse("宅地、宅地", "地目", nil)
	values := result["values"].([]any)
	if len(values) != 1 {
		t.Fatalf("expected deduped, got %v", values)
	}
}

func TestCleanseLandUse_Empty(t *testing.T) {
	result := CleanseLandUse("-", "地目", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
}
