package cleansing

import "testing"

func TestCleanseParking_FreeOnSite(t *testing.T) {
	result := CleanseParking("敷地内（料金無）", "駐車場", nil)
	if result["availability"] != true {
		t.Fatalf("expected availability, got %v", result)
	}
	if result["location"] != "敷地内" {
		t.Fatalf("expected 敷地内, got %v", result["location"])
	}
	if result["value"] != 0 {
		t.Fatalf("expected fee 0, got %v", result["value"])
	}
	if result["unit"] != "円" {
		t.Fatalf("expected 円, got %v", result["unit"])
	}
}

func TestCleanseParking_RangeMonthly(t *testing.T) {
	result := CleanseParking("敷地内 4500円～6000円／月", "駐車場", nil)
	if result["min"] != 4500 || result["max"] != 6000 {
		t.Fatalf("expected 4500-6000, got %v", result)
	}
	if result["value"] != 5250 {
		t.Fatalf("expected midpoint 5250, got %v", result["value"])
	}
	if result["frequency"] != "月" {
		t.Fatalf("expected 月 frequency, got %v", result["frequency"])
	}
}

func TestCleanseParking_None(t *testing.T) {
	result := CleanseParking("空無", "駐車場", nil)
	if result["availability"] != false {
		t.Fatalf("expected no availability, got %v", result)
	}
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result["value"])
	}
}

func TestCleanseParking_Mechanical(t *testing.T) {
	result := CleanseParking("機械式 1万5000円／月", "駐車場", nil)
	if result["location"] != "機械式" {
		t.Fatalf("expected 機械式, got %v", result["location"])
	}
	if result["value"] != 15000 {
		t.Fatalf("expected 15000, got %v", result["value"])
	}
	if result["frequency"] != "月" {
		t.Fatalf("expected 月 frequency, got %v", result["frequency"])
	}
}

func TestCleanseParking_Sentinel(t *testing.T) {
	result := CleanseParking("-", "駐車場", nil)
	if result["availability"] != false || result["value"] != nil {
		t.Fatalf("expected empty shape, got %v", result)
	}
}
