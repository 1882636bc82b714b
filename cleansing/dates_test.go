package cleansing

import "testing"

func TestCleanseDate_YearMonth(t *testing.T) {
	result := CleanseDate("2025年3月", "築年月", nil)
	if result["year"] != 2025 || result["month"] != 3 {
		t.Fatalf("expected 2025-03, got %v", result)
	}
	if result["estimated_date"] != "2025-03-01" {
		t.Fatalf("expected estimated_date 2025-03-01, got %v", result["estimated_date"])
	}
}

func TestCleanseDate_TenDayPeriod(t *testing.T) {
	result := CleanseDate("2025年3月下旬", "完成時期", nil)
	if result["period_text"] != "下旬" {
		t.Fatalf("expected period_text 下旬, got %v", result["period_text"])
	}
	if result["estimated_date"] != "2025-03-25" {
		t.Fatalf("expected estimated_date 2025-03-25, got %v", result["estimated_date"])
	}
}

func TestCleanseDate_FullDate(t *testing.T) {
	result := CleanseDate("2024年10月5日", "築年月", nil)
	if result["day"] != 5 {
		t.Fatalf("expected day 5, got %v", result["day"])
	}
	if result["estimated_date"] != "2024-10-05" {
		t.Fatalf("expected estimated_date 2024-10-05, got %v", result["estimated_date"])
	}
}

func TestCleanseDate_EraYear(t *testing.T) {
	result := CleanseDate("令和7年4月", "築年月", nil)
	if result["year"] != 2025 || result["month"] != 4 {
		t.Fatalf("expected 2025-04 from 令和7年, got %v", result)
	}
}

func TestCleanseDate_Undefined(t *testing.T) {
	result := CleanseDate("未定", "完成時期", nil)
	if result["is_undefined"] != true {
		t.Fatalf("expected is_undefined, got %v", result)
	}
}

func TestCleanseDate_Tentative(t *testing.T) {
	result := CleanseDate("2026年2月予定", "完成時期", nil)
	if result["tentative"] != true {
		t.Fatalf("expected tentative, got %v", result)
	}
	if result["year"] != 2026 {
		t.Fatalf("expected year 2026, got %v", result["year"])
	}
}

func TestCleanseDeliveryDate_Immediate(t *testing.T) {
	result := CleanseDeliveryDate("即入居可", "引渡時期", nil)
	if result["type"] != "immediate" {
		t.Fatalf("expected immediate, got %v", result)
	}
}

func TestCleanseDeliveryDate_Negotiable(t *testing.T) {
	result := CleanseDeliveryDate("相談", "引渡時期", nil)
	if result["type"] != "negotiable" {
		t.Fatalf("expected negotiable, got %v", result)
	}
}

func TestCleanseDeliveryDate_AfterContract(t *testing.T) {
	result := CleanseDeliveryDate("契約後3ヶ月", "引渡時期", nil)
	if result["type"] != "after_contract" {
		t.Fatalf("expected after_contract, got %v", result)
	}
	if result["months"] != 3.0 {
		t.Fatalf("expected months 3, got %v", result["months"])
	}
}

func TestCleanseDeliveryDate_MonthEnd(t *testing.T) {
	result := CleanseDeliveryDate("2025年9月末", "引渡時期", nil)
	if result["period_text"] != "末" {
		t.Fatalf("expected period_text 末, got %v", result["period_text"])
	}
	if result["estimated_date"] != "2025-09-30" {
		t.Fatalf("expected estimated_date 2025-09-30, got %v", result["estimated_date"])
	}
}

func TestCleanseExpiryDate_ISO(t *testing.T) {
	result := CleanseExpiryDate("2025年12月31日", "取引条件有効期限", nil)
	if result["date"] != "2025-12-31" {
		t.Fatalf("expected 2025-12-31, got %v", result["date"])
	}
}

func TestCleanseExpiryDate_Era(t *testing.T) {
	result := CleanseExpiryDate("令和7年1月15日", "取引条件有効期限", nil)
	if result["date"] != "2025-01-15" {
		t.Fatalf("expected 2025-01-15, got %v", result["date"])
	}
}

func TestCleanseExpiryDate_Empty(t *testing.T) {
	result := CleanseExpiryDate("-", "取引条件有効期限", nil)
	if result["date"] != nil {
		t.Fatalf("expected nil date, got %v", result["date"])
	}
}
