package cleansing

import (
	"math"
	"testing"
)

func TestCleansePrice_Single(t *testing.T) {
	result := CleansePrice("3980万円", "価格", nil)
	if result["unit"] != "万円" {
		t.Fatalf("expected unit 万円, got %v", result["unit"])
	}
	if result["value"] != 3980.0 {
		t.Fatalf("expected value 3980, got %v", result["value"])
	}
}

func TestCleansePrice_Range(t *testing.T) {
	result := CleansePrice("2980万円～4580万円", "価格", nil)
	if result["min"] != 2980.0 || result["max"] != 4580.0 {
		t.Fatalf("expected range 2980-4580, got %v-%v", result["min"], result["max"])
	}
	value, ok := result["value"].(float64)
	if !ok {
		t.Fatalf("expected numeric midpoint, got %T", result["value"])
	}
	if value != 3780.0 {
		t.Fatalf("expected midpoint 3780, got %v", value)
	}
	if value < result["min"].(float64) || value > result["max"].(float64) {
		t.Fatalf("midpoint %v outside range", value)
	}
}

func TestCleansePrice_OkuMan(t *testing.T) {
	result := CleansePrice("1億2000万円", "価格", nil)
	if result["unit"] != "万円" {
		t.Fatalf("expected unit 万円, got %v", result["unit"])
	}
	if result["value"] != 12000.0 {
		t.Fatalf("expected value 12000, got %v", result["value"])
	}
}

func TestCleansePrice_OkuRange(t *testing.T) {
	result := CleansePrice("9800万円～1億2000万円", "価格", nil)
	if result["min"] != 9800.0 || result["max"] != 12000.0 {
		t.Fatalf("expected range 9800-12000, got %v-%v", result["min"], result["max"])
	}
	if math.Abs(result["value"].(float64)-10900.0) > 1e-9 {
		t.Fatalf("expected midpoint 10900, got %v", result["value"])
	}
}

func TestCleansePrice_Undefined(t *testing.T) {
	result := CleansePrice("価格未定", "価格", nil)
	if result["is_undefined"] != true {
		t.Fatalf("expected is_undefined, got %v", result)
	}
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result["value"])
	}
}

func TestCleansePrice_Negotiable(t *testing.T) {
	result := CleansePrice("要相談", "価格", nil)
	if result["type"] != "negotiable" {
		t.Fatalf("expected negotiable, got %v", result)
	}
}

func TestCleansePrice_Empty(t *testing.T) {
	result := CleansePrice("", "価格", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result["value"])
	}
}

func TestCleansePrice_Note(t *testing.T) {
	result := CleansePrice("3980万円（税込）", "価格", nil)
	if result["value"] != 3980.0 {
		t.Fatalf("expected value 3980, got %v", result["value"])
	}
	if result["note"] != "税込" {
		t.Fatalf("expected note 税込, got %v", result["note"])
	}
}

func TestCleansePrice_Period(t *testing.T) {
	period := 2
	result := CleansePrice("3000万円", "価格", &period)
	if result["period"] != 2 {
		t.Fatalf("expected period 2, got %v", result["period"])
	}
}

func TestCleansePrice_Idempotent(t *testing.T) {
	first := CleansePrice("2980万円～4580万円", "価格", nil)
	second := CleansePrice("2980万円～4580万円", "価格", nil)
	if len(first) != len(second) {
		t.Fatalf("results differ in size: %v vs %v", first, second)
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("field %s differs: %v vs %v", k, v, second[k])
		}
	}
}
