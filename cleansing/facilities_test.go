package cleansing

import "testing"

func TestCleanseSurroundingFacilities_CategoryPairs(t *testing.T) {
	result := CleanseSurroundingFacilities("スーパー\tライフ桜新町店：徒歩5分（400ｍ）\tその他環境\t区民センター：徒歩10分（800ｍ）", "周辺施設", nil)
	facilities := result["facilities"].([]any)
	if len(facilities) != 2 {
		t.Fatalf("expected 2 facilities, got %v", result)
	}
	first := facilities[0].(Result)
	if first["category"] != "スーパー" {
		t.Fatalf("expected スーパー, got %v", first["category"])
	}
	if first["name"] != "ライフ桜新町店" {
		t.Fatalf("expected facility name, got %v", first["name"])
	}
	if first["walking_time"] != 5 || first["distance"] != 400 {
		t.Fatalf("expected 5min 400m, got %v", first)
	}
	second := facilities[1].(Result)
	if second["category"] != "その他" {
		t.Fatalf("expected その他環境 folded to その他, got %v", second["category"])
	}
}

func TestCleanseSurroundingFacilities_BareDistance(t *testing.T) {
	result := CleanseSurroundingFacilities("市立第一小学校まで800m", "周辺施設", nil)
	facilities := result["facilities"].([]any)
	if len(facilities) != 1 {
		t.Fatalf("expected 1 facility, got %v", result)
	}
	entry := facilities[0].(Result)
	if entry["name"] != "市立第一小学校" {
		t.Fatalf("expected name, got %v", entry["name"])
	}
	if entry["distance"] != 800 {
		t.Fatalf("expected 800m, got %v", entry["distance"])
	}
	if entry["category"] != nil || entry["walking_time"] != nil {
		t.Fatalf("expected no category or walking time, got %v", entry)
	}
}

func TestCleanseSurroundingFacilities_DedupesByName(t *testing.T) {
	result := CleanseSurroundingFacilities("スーパー\tライフ桜新町店：徒歩5分（400ｍ）\tスーパー\tライフ桜新町店：徒歩6分（450ｍ）", "周辺施設", nil)
	facilities := result["facilities"].([]any)
	if len(facilities) != 1 {
		t.Fatalf("expected duplicate collapsed, got %v", facilities)
	}
	if facilities[0].(Result)["walking_time"] != 5 {
		t.Fatalf("expected first entry kept, got %v", facilities[0])
	}
}

func TestCleanseSurroundingFacilities_Empty(t *testing.T) {
	result := CleanseSurroundingFacilities("-", "周辺施設", nil)
	if result["value"] != nil {
		t.Fatalf("expected nil value, got %v", result)
	}
}
