package cleansing

import "testing"

func layoutValues(t *testing.T, result Result) []string {
	t.Helper()
	values, ok := result["values"].([]string)
	if !ok {
		t.Fatalf("expected layout values, got %v", result)
	}
	return values
}

func TestCleanseLayout_Single(t *testing.T) {
	result := CleanseLayout("3LDK", "間取り", nil)
	values := layoutValues(t, result)
	if len(values) != 1 || values[0] != "3LDK" {
		t.Fatalf("expected [3LDK], got %v", values)
	}
}

func TestCleanseLayout_RangeExpansion(t *testing.T) {
	result := CleanseLayout("1LDK～3LDK", "間取り", nil)
	values := layoutValues(t, result)
	want := []string{"1LDK", "2LDK", "3LDK"}
	if len(values) != len(want) {
		t.Fatalf("expected %d layouts, got %v", len(want), values)
	}
	for i, w := range want {
		if values[i] != w {
			t.Fatalf("expected %s at %d, got %s", w, i, values[i])
		}
	}
}

func TestCleanseLayout_OneRoom(t *testing.T) {
	result := CleanseLayout("ワンルーム", "間取り", nil)
	if result["value"] != "1R" {
		t.Fatalf("expected 1R, got %v", result)
	}
}

func TestCleanseLayout_StorageAnnex(t *testing.T) {
	result := CleanseLayout("2LDK+S（納戸）", "間取り", nil)
	values := layoutValues(t, result)
	if len(values) != 1 || values[0] != "2LDK+S" {
		t.Fatalf("expected [2LDK+S], got %v", values)
	}
}

func TestCleanseLayout_DedupeAndSort(t *testing.T) {
	result := CleanseLayout("3LDK・1R・2LDK+S・2LDK", "間取り", nil)
	values := layoutValues(t, result)
	want := []string{"1R", "2LDK", "2LDK+S", "3LDK"}
	if len(values) != len(want) {
		t.Fatalf("expected %v, got %v", want, values)
	}
	for i, w := range want {
		if values[i] != w {
			t.Fatalf("expected %s at %d, got %v", w, i, values)
		}
	}
}

func TestCleanseLayout_NoToken(t *testing.T) {
	result := CleanseLayout("自由設計", "間取り", nil)
	if result["value"] != "自由設計" {
		t.Fatalf("expected raw passthrough, got %v", result)
	}
}

func TestCleanseLayout_Sentinel(t *testing.T) {
	result := CleanseLayout("未定", "間取り", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
}
