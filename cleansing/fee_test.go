package cleansing

import "testing"

func TestCleanseManagementFee_Monthly(t *testing.T) {
	result := CleanseManagementFee("12000円／月", "管理費", nil)
	if result["value"] != 12000 {
		t.Fatalf("expected 12000, got %v", result["value"])
	}
	if result["unit"] != "円" {
		t.Fatalf("expected unit 円, got %v", result["unit"])
	}
	if result["frequency"] != "月" {
		t.Fatalf("expected frequency 月, got %v", result["frequency"])
	}
}

func TestCleanseManagementFee_ManYen(t *testing.T) {
	result := CleanseManagementFee("1万2000円／月", "管理費", nil)
	if result["value"] != 12000 {
		t.Fatalf("expected 12000, got %v", result["value"])
	}
}

func TestCleanseManagementFee_Range(t *testing.T) {
	result := CleanseManagementFee("5000円～8000円／月", "管理費", nil)
	if result["min"] != 5000 || result["max"] != 8000 {
		t.Fatalf("expected range 5000-8000, got %v-%v", result["min"], result["max"])
	}
	if result["value"] != 6500.0 {
		t.Fatalf("expected midpoint 6500, got %v", result["value"])
	}
}

func TestCleanseManagementFee_None(t *testing.T) {
	result := CleanseManagementFee("無", "管理費", nil)
	if result["value"] != 0 {
		t.Fatalf("expected 0, got %v", result["value"])
	}
}

func TestCleanseManagementFee_Undefined(t *testing.T) {
	result := CleanseManagementFee("金額未定", "管理費", nil)
	if result["is_undefined"] != true {
		t.Fatalf("expected is_undefined, got %v", result)
	}
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result["value"])
	}
}

func TestCleanseManagementFee_LumpSum(t *testing.T) {
	result := CleanseManagementFee("修繕積立基金：500,000円（一括）", "修繕積立基金", nil)
	if result["value"] != 500000 {
		t.Fatalf("expected 500000, got %v", result["value"])
	}
	if result["frequency"] != "一括" {
		t.Fatalf("expected frequency 一括, got %v", result["frequency"])
	}
}

func TestCleanseManagementFee_ManagementType(t *testing.T) {
	result := CleanseManagementFee("15000円／月（委託・通勤）", "管理費", nil)
	if result["management_type"] != "委託" {
		t.Fatalf("expected 委託, got %v", result["management_type"])
	}
	if result["work_style"] != "通勤" {
		t.Fatalf("expected 通勤, got %v", result["work_style"])
	}
	if result["value"] != 15000 {
		t.Fatalf("expected 15000, got %v", result["value"])
	}
}
