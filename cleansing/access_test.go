package cleansing

import "testing"

func TestCleanseAccess_Train(t *testing.T) {
	result := CleanseAccess("東京メトロ日比谷線「六本木」歩5分", "交通", nil)
	routes, ok := result["routes"].([]any)
	if !ok || len(routes) != 1 {
		t.Fatalf("expected 1 route, got %v", result)
	}
	route := routes[0].(Result)
	if route["line"] != "東京メトロ日比谷線" {
		t.Fatalf("expected line, got %v", route["line"])
	}
	if route["station"] != "六本木" {
		t.Fatalf("expected station 六本木, got %v", route["station"])
	}
	if route["time"] != 5 {
		t.Fatalf("expected time 5, got %v", route["time"])
	}
}

func TestCleanseAccess_MultipleRoutes(t *testing.T) {
	value := "東京メトロ日比谷線「六本木」歩5分\t都営大江戸線「麻布十番」歩8分"
	result := CleanseAccess(value, "交通", nil)
	routes := result["routes"].([]any)
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	second := routes[1].(Result)
	if second["station"] != "麻布十番" || second["time"] != 8 {
		t.Fatalf("unexpected second route %v", second)
	}
}

func TestCleanseAccess_Car(t *testing.T) {
	result := CleanseAccess("JR中央本線 大月駅より車15分", "交通", nil)
	routes, ok := result["routes"].([]any)
	if !ok || len(routes) != 1 {
		t.Fatalf("expected 1 route, got %v", result)
	}
	route := routes[0].(Result)
	if route["method"] != "車" {
		t.Fatalf("expected car route, got %v", route)
	}
	if route["time"] != 15 {
		t.Fatalf("expected time 15, got %v", route["time"])
	}
}

func TestCleanseAccess_NoRoute(t *testing.T) {
	result := CleanseAccess("現地までお問い合わせください", "交通", nil)
	if result["value"] != "現地までお問い合わせください" {
		t.Fatalf("expected raw passthrough, got %v", result)
	}
}
