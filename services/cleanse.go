package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"estate_cleanser/cleansing"
	"estate_cleanser/keymap"
	"estate_cleanser/models"
	"estate_cleanser/schema"
	"estate_cleanser/storage"
)

// ConverterRevision is bumped whenever converter semantics change; stored
// values with an older revision are picked up by the re-cleanse worker.
const ConverterRevision = 3

// CleanseService turns queued raw-field snapshots into validated cleaned
// JSON records and persists them.
type CleanseService struct {
	pg  *storage.PostgresStore
	ops *storage.SQLiteStore
}

func NewCleanseService(pg *storage.PostgresStore, ops *storage.SQLiteStore) *CleanseService {
	return &CleanseService{
		pg:  pg,
		ops: ops,
	}
}

// FieldOutcome is the result of cleansing one raw field. Dropped is set when
// the router force-nulled the label without a canonical name; the consumer
// discards such records.
type FieldOutcome struct {
	CleanedName string
	KeyName     string
	Value       cleansing.Result
	Period      *int
	Report      schema.Report
	Dropped     bool
}

// CleanseField runs the full pure pipeline for one label/value pair:
// route, convert, validate. A panicking converter degrades to the generic
// text converter instead of failing the batch.
func (s *CleanseService) CleanseField(label, value string) FieldOutcome {
	res := keymap.Resolve(label)

	converter, ok := cleansing.Converters[string(res.Converter)]
	if !ok {
		log.Printf("Warning: no converter registered for %q, treating %q as text", res.Converter, label)
		converter = cleansing.CleanseText
	}

	cleaned := runConverter(converter, value, label, res.Period)

	outcome := FieldOutcome{
		CleanedName: res.CleanedName,
		KeyName:     res.KeyName,
		Value:       cleaned,
		Period:      res.Period,
		Dropped:     res.CleanedName == "",
	}
	if !outcome.Dropped {
		outcome.Report = schema.Validate(res.CleanedName, cleaned)
	}
	return outcome
}

// runConverter isolates converter panics. A panic is a converter bug; the
// field still gets a usable record via the text fallback.
func runConverter(converter cleansing.Converter, value, label string, period *int) (result cleansing.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: converter panicked on %q: %v, falling back to text", label, r)
			result = cleansing.CleanseText(value, label, period)
		}
	}()
	return converter(value, label, period)
}

// ProcessResult contains the outcome of processing one snapshot.
type ProcessResult struct {
	FieldsSeen     int
	FieldsCleaned  int
	FieldsDropped  int
	SchemaFailures int
	Errors         int
}

// ProcessSnapshot cleanses every field of one snapshot and persists the
// validated records. Failures on individual fields are logged and skipped;
// the snapshot is still marked processed.
func (s *CleanseService) ProcessSnapshot(ctx context.Context, snap *models.Snapshot, runID string) (*ProcessResult, error) {
	result := &ProcessResult{}
	now := time.Now()

	for _, field := range snap.Fields {
		result.FieldsSeen++

		outcome := s.CleanseField(field.Label, field.Value)
		if outcome.Dropped {
			result.FieldsDropped++
			continue
		}

		if len(outcome.Report.MissingRequired) > 0 {
			result.SchemaFailures++
			log.Printf("Warning: %s (%s) missing required fields %v, record excluded",
				outcome.CleanedName, field.Label, outcome.Report.MissingRequired)
			continue
		}
		if len(outcome.Report.TypeMismatches) > 0 {
			result.SchemaFailures++
			log.Printf("Warning: %s (%s) type mismatches: %v", outcome.CleanedName, field.Label, outcome.Report.TypeMismatches)
		}
		if len(outcome.Report.ExtraFields) > 0 {
			log.Printf("Warning: %s (%s) undeclared fields: %v", outcome.CleanedName, field.Label, outcome.Report.ExtraFields)
		}

		if err := s.persistOutcome(ctx, snap, field.Label, outcome, runID, now); err != nil {
			result.Errors++
			log.Printf("Warning: failed to persist %s for %s: %v", field.Label, snap.EstateID, err)
			continue
		}
		result.FieldsCleaned++
	}

	return result, nil
}

func (s *CleanseService) persistOutcome(ctx context.Context, snap *models.Snapshot, label string, outcome FieldOutcome, runID string, now time.Time) error {
	keyID, err := s.pg.UpsertKey(ctx, label, outcome.KeyName)
	if err != nil {
		return fmt.Errorf("upsert key: %w", err)
	}
	cleanedID, err := s.pg.UpsertCleanedName(ctx, outcome.CleanedName)
	if err != nil {
		return fmt.Errorf("upsert cleaned name: %w", err)
	}

	value, err := json.Marshal(outcome.Value)
	if err != nil {
		return fmt.Errorf("marshal cleaned value: %w", err)
	}

	rec := &models.CleanedRecord{
		EstateID:    snap.EstateID,
		KeyName:     outcome.KeyName,
		CleanedName: outcome.CleanedName,
		Value:       value,
		Period:      outcome.Period,
		CleanedAt:   now,
		RunID:       runID,
	}
	if err := s.pg.UpsertCleanedValue(ctx, rec, keyID, cleanedID, ConverterRevision); err != nil {
		return fmt.Errorf("upsert cleaned value: %w", err)
	}
	return nil
}

// RunBatch drains up to batchSize pending snapshots for one source (empty
// sourceID means all) under a single cleanse run.
func (s *CleanseService) RunBatch(ctx context.Context, sourceID string, batchSize int) (*models.CleanseRun, error) {
	run := &models.CleanseRun{
		ID:        uuid.New().String(),
		SourceID:  sourceID,
		StartedAt: time.Now(),
		Status:    models.RunStatusRunning,
	}
	if err := s.pg.CreateCleanseRun(ctx, run); err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}

	snaps, err := s.ops.GetPendingSnapshots(sourceID, batchSize)
	if err != nil {
		s.finishRun(ctx, run, models.RunStatusFailed)
		return run, fmt.Errorf("load pending snapshots: %w", err)
	}

	stats := &ProcessStats{}
	for i := range snaps {
		snap := &snaps[i]
		if err := s.pg.InsertRawFields(ctx, snap); err != nil {
			log.Printf("Warning: failed to store raw fields for %s: %v", snap.EstateID, err)
		}
		result, err := s.ProcessSnapshot(ctx, snap, run.ID)
		if err != nil {
			stats.Errors++
			log.Printf("Warning: failed to process snapshot %s: %v", snap.ID, err)
			continue
		}
		stats.Aggregate(result)

		if err := s.ops.MarkSnapshotProcessed(snap.ID); err != nil {
			log.Printf("Warning: failed to mark snapshot %s processed: %v", snap.ID, err)
		}
	}

	run.SnapshotsSeen = stats.SnapshotsProcessed
	run.FieldsSeen = stats.FieldsSeen
	run.FieldsCleaned = stats.FieldsCleaned
	run.FieldsDropped = stats.FieldsDropped
	run.SchemaFailures = stats.SchemaFailures
	run.ErrorsCount = stats.Errors
	s.finishRun(ctx, run, models.RunStatusCompleted)

	if err := s.ops.UpdateSourceStats(sourceID, run); err != nil {
		log.Printf("Warning: failed to update source stats: %v", err)
	}

	log.Printf("Cleanse run %s: %d snapshots, %d/%d fields cleaned, %d dropped, %d schema failures",
		run.ID, run.SnapshotsSeen, run.FieldsCleaned, run.FieldsSeen, run.FieldsDropped, run.SchemaFailures)
	return run, nil
}

// LastRun returns the most recent run for a source, nil when none exists.
func (s *CleanseService) LastRun(ctx context.Context, sourceID string) (*models.CleanseRun, error) {
	return s.pg.GetLastCleanseRun(ctx, sourceID)
}

func (s *CleanseService) finishRun(ctx context.Context, run *models.CleanseRun, status models.RunStatus) {
	now := time.Now()
	run.FinishedAt = &now
	run.Status = status
	if err := s.pg.UpdateCleanseRun(ctx, run); err != nil {
		log.Printf("Warning: failed to update run %s: %v", run.ID, err)
	}
}

// ProcessStats tracks aggregate statistics for a cleanse run
type ProcessStats struct {
	SnapshotsProcessed int
	FieldsSeen         int
	FieldsCleaned      int
	FieldsDropped      int
	SchemaFailures     int
	Errors             int
}

// Aggregate adds a ProcessResult to the stats
func (s *ProcessStats) Aggregate(r *ProcessResult) {
	s.SnapshotsProcessed++
	s.FieldsSeen += r.FieldsSeen
	s.FieldsCleaned += r.FieldsCleaned
	s.FieldsDropped += r.FieldsDropped
	s.SchemaFailures += r.SchemaFailures
	s.Errors += r.Errors
}

// ToJSON returns JSON-serializable metadata
func (s *ProcessStats) ToJSON() json.RawMessage {
	data, _ := json.Marshal(map[string]int{
		"snapshots_processed": s.SnapshotsProcessed,
		"fields_seen":         s.FieldsSeen,
		"fields_cleaned":      s.FieldsCleaned,
		"fields_dropped":      s.FieldsDropped,
		"schema_failures":     s.SchemaFailures,
		"errors":              s.Errors,
	})
	return data
}
