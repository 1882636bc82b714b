package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"estate_cleanser/storage"
)

// ExportService pushes a run's cleaned records to S3-compatible storage as
// one JSON document per run, keyed estate -> ASCII field name -> value.
type ExportService struct {
	pg       *storage.PostgresStore
	exporter *storage.S3Exporter
}

func NewExportService(pg *storage.PostgresStore, exporter *storage.S3Exporter) *ExportService {
	return &ExportService{pg: pg, exporter: exporter}
}

// ExportRun uploads every cleaned record of one run. A run with no records
// uploads nothing and is not an error.
func (s *ExportService) ExportRun(ctx context.Context, sourceID, runID string) error {
	if s.exporter == nil {
		return nil
	}

	recs, err := s.pg.GetCleanedValuesForRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("load cleaned values: %w", err)
	}
	if len(recs) == 0 {
		return nil
	}

	estates := map[string]map[string]json.RawMessage{}
	for _, rec := range recs {
		fields, ok := estates[rec.EstateID]
		if !ok {
			fields = map[string]json.RawMessage{}
			estates[rec.EstateID] = fields
		}
		fields[rec.KeyName] = rec.Value
	}

	doc := map[string]any{
		"run_id":      runID,
		"source_id":   sourceID,
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"estates":     estates,
	}

	key := storage.ExportKey(sourceID, runID, time.Now())
	if err := s.exporter.ExportJSON(ctx, key, doc); err != nil {
		return fmt.Errorf("upload export: %w", err)
	}

	log.Printf("Exported %d cleaned records for %d estates to %s", len(recs), len(estates), key)
	return nil
}
