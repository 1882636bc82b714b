package workers

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"estate_cleanser/models"
	"estate_cleanser/services"
	"estate_cleanser/storage"
)

const recleanseBatchSize = 100

// RecleanseWorker reprocesses estates whose stored values were cleaned with
// an older converter revision, using the raw fields already persisted.
type RecleanseWorker struct {
	pg        *storage.PostgresStore
	cleanser  *services.CleanseService
	interval  time.Duration
	triggerCh chan struct{}
}

func NewRecleanseWorker(pg *storage.PostgresStore, cleanser *services.CleanseService, interval time.Duration) *RecleanseWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &RecleanseWorker{
		pg:        pg,
		cleanser:  cleanser,
		interval:  interval,
		triggerCh: make(chan struct{}, 1),
	}
}

// Trigger requests an immediate pass. Non-blocking; a pass already pending
// absorbs the request.
func (w *RecleanseWorker) Trigger() {
	select {
	case w.triggerCh <- struct{}{}:
	default:
	}
}

// Run starts the re-cleanse loop
func (w *RecleanseWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Re-cleanse worker stopping")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		case <-w.triggerCh:
			w.processBatch(ctx)
		}
	}
}

func (w *RecleanseWorker) processBatch(ctx context.Context) {
	estateIDs, err := w.pg.GetStaleCleanedEstates(ctx, services.ConverterRevision, recleanseBatchSize)
	if err != nil {
		log.Printf("Re-cleanse worker: query error: %v", err)
		return
	}
	if len(estateIDs) == 0 {
		return
	}

	log.Printf("Re-cleanse worker: %d estates behind revision %d", len(estateIDs), services.ConverterRevision)

	runID := uuid.New().String()
	var processed, failed int
	for _, estateID := range estateIDs {
		if err := w.recleanseEstate(ctx, estateID, runID); err != nil {
			log.Printf("Re-cleanse worker: failed %s: %v", estateID, err)
			failed++
			continue
		}
		processed++
	}

	log.Printf("Re-cleanse worker: processed %d, failed %d", processed, failed)
}

func (w *RecleanseWorker) recleanseEstate(ctx context.Context, estateID, runID string) error {
	fields, err := w.pg.GetRawFieldsForEstate(ctx, estateID)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	snap := &models.Snapshot{
		ID:        uuid.New().String(),
		EstateID:  estateID,
		Fields:    fields,
		ScrapedAt: time.Now(),
		RunID:     runID,
	}

	result, err := w.cleanser.ProcessSnapshot(ctx, snap, runID)
	if err != nil {
		return err
	}
	if result.Errors > 0 {
		log.Printf("Re-cleanse worker: %s finished with %d errors", estateID, result.Errors)
	}
	return nil
}
