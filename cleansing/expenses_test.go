package cleansing

import "testing"

func TestCleanseOtherExpenses_Categorized(t *testing.T) {
	result := CleanseOtherExpenses("駐車場使用料：5000円／月、インターネット利用料：1100円／月", "その他諸経費", nil)
	expenses := result["expenses"].([]any)
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %v", result)
	}
	first := expenses[0].(Result)
	if first["category"] != "駐車場" {
		t.Fatalf("expected 駐車場 category, got %v", first["category"])
	}
	if first["name"] != "駐車場使用料" {
		t.Fatalf("expected name kept, got %v", first["name"])
	}
	if first["value"] != 5000 {
		t.Fatalf("expected 5000, got %v", first["value"])
	}
	if first["unit"] != "円" || first["frequency"] != "月" {
		t.Fatalf("expected 円 per 月, got %v", first)
	}
	second := expenses[1].(Result)
	if second["category"] != "通信費" {
		t.Fatalf("expected 通信費 category, got %v", second["category"])
	}
	if second["name"] != "インターネット" {
		t.Fatalf("expected normalized name, got %v", second["name"])
	}
	if second["value"] != 1100 {
		t.Fatalf("expected 1100, got %v", second["value"])
	}
}

func TestCleanseOtherExpenses_Range(t *testing.T) {
	result := CleanseOtherExpenses("駐車場：5000円～8000円", "その他諸経費", nil)
	expenses := result["expenses"].([]any)
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %v", result)
	}
	entry := expenses[0].(Result)
	if entry["min"] != 5000 || entry["max"] != 8000 {
		t.Fatalf("expected 5000-8000, got %v", entry)
	}
	if entry["value"] != 6500.0 {
		t.Fatalf("expected midpoint 6500, got %v", entry["value"])
	}
}

func TestCleanseOtherExpenses_NoCategoryMatch(t *testing.T) {
	result := CleanseOtherExpenses("町内清掃費：1000円／月", "その他諸経費", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
	if _, ok := result["expenses"]; ok {
		t.Fatalf("expected no expenses key, got %v", result)
	}
}

func TestCleanseOtherExpenses_Empty(t *testing.T) {
	result := CleanseOtherExpenses("-", "その他諸経費", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
}
