package services

import "testing"

func TestCleanseField_Price(t *testing.T) {
	s := NewCleanseService(nil, nil)

	outcome := s.CleanseField("価格", "3980万円～5980万円")
	if outcome.Dropped {
		t.Fatalf("price field must not be dropped")
	}
	if outcome.CleanedName != "価格" {
		t.Fatalf("expected 価格, got %s", outcome.CleanedName)
	}
	if outcome.KeyName != "price" {
		t.Fatalf("expected price, got %s", outcome.KeyName)
	}
	if !outcome.Report.Valid() {
		t.Fatalf("expected valid report, got %+v", outcome.Report)
	}
	if outcome.Value["min"] != 3980.0 || outcome.Value["max"] != 5980.0 {
		t.Fatalf("unexpected range %v", outcome.Value)
	}
}

func TestCleanseField_Phased(t *testing.T) {
	s := NewCleanseService(nil, nil)

	outcome := s.CleanseField("価格_第2期", "3000万円")
	if outcome.Period == nil || *outcome.Period != 2 {
		t.Fatalf("expected period 2, got %v", outcome.Period)
	}
	if outcome.KeyName != "price_phase2" {
		t.Fatalf("expected price_phase2, got %s", outcome.KeyName)
	}
	if outcome.Value["period"] != 2 {
		t.Fatalf("expected period in value, got %v", outcome.Value)
	}
	if !outcome.Report.Valid() {
		t.Fatalf("expected valid report, got %+v", outcome.Report)
	}
}

func TestCleanseField_Dropped(t *testing.T) {
	s := NewCleanseService(nil, nil)

	outcome := s.CleanseField("販売スケジュール", "第1期 2025年10月上旬販売開始予定")
	if !outcome.Dropped {
		t.Fatalf("expected dropped outcome")
	}
	if outcome.CleanedName != "" {
		t.Fatalf("expected empty cleaned name, got %s", outcome.CleanedName)
	}
}

func TestCleanseField_UnknownLabelStillValidates(t *testing.T) {
	s := NewCleanseService(nil, nil)

	outcome := s.CleanseField("特記すべき事項", "南側に公園あり")
	if outcome.Dropped {
		t.Fatalf("unknown labels route to text, not drop")
	}
	if outcome.Report.Known {
		t.Fatalf("unregistered name must validate as unknown")
	}
	if !outcome.Report.Valid() {
		t.Fatalf("unknown schema must pass, got %+v", outcome.Report)
	}
	if outcome.Value["value"] != "南側に公園あり" {
		t.Fatalf("unexpected value %v", outcome.Value)
	}
}

func TestProcessStats_Aggregate(t *testing.T) {
	stats := &ProcessStats{}
	stats.Aggregate(&ProcessResult{FieldsSeen: 10, FieldsCleaned: 8, FieldsDropped: 1, SchemaFailures: 1})
	stats.Aggregate(&ProcessResult{FieldsSeen: 5, FieldsCleaned: 5})

	if stats.SnapshotsProcessed != 2 {
		t.Fatalf("expected 2 snapshots, got %d", stats.SnapshotsProcessed)
	}
	if stats.FieldsSeen != 15 || stats.FieldsCleaned != 13 {
		t.Fatalf("unexpected totals %+v", stats)
	}
	if stats.FieldsDropped != 1 || stats.SchemaFailures != 1 {
		t.Fatalf("unexpected totals %+v", stats)
	}
}
