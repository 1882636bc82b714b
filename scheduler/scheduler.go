package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"estate_cleanser/config"
	"estate_cleanser/models"
	"estate_cleanser/services"
	"estate_cleanser/storage"
)

// Triggerable allows workers to be triggered manually
type Triggerable interface {
	Trigger()
}

type Scheduler struct {
	cfg      *config.Config
	cleanser *services.CleanseService
	export   *services.ExportService
	store    *storage.SQLiteStore
	cron     *cron.Cron
	ticker   *time.Ticker
	stopCh   chan struct{}
	paused   atomic.Bool

	recleanseWorker Triggerable
}

func New(cfg *config.Config, cleanser *services.CleanseService, export *services.ExportService, store *storage.SQLiteStore) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		cleanser: cleanser,
		export:   export,
		store:    store,
		cron:     cron.New(),
		stopCh:   make(chan struct{}),
	}
}

// SetWorkers registers background workers for manual triggering
func (s *Scheduler) SetWorkers(recleanse Triggerable) {
	s.recleanseWorker = recleanse
}

func (s *Scheduler) Start(ctx context.Context) error {
	go s.pollCommands(ctx)

	if s.cfg.Scheduler.Cron != "" {
		log.Printf("Starting scheduler with cron: %s", s.cfg.Scheduler.Cron)
		_, err := s.cron.AddFunc(s.cfg.Scheduler.Cron, func() {
			s.runBatch(ctx)
		})
		if err != nil {
			return fmt.Errorf("invalid cron expression: %w", err)
		}
		s.cron.Start()
	} else if s.cfg.Scheduler.Interval > 0 {
		log.Printf("Starting scheduler with interval: %s", s.cfg.Scheduler.Interval)
		s.ticker = time.NewTicker(s.cfg.Scheduler.Interval)
		go func() {
			for {
				select {
				case <-s.ticker.C:
					s.runBatch(ctx)
				case <-s.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	} else {
		log.Println("No schedule configured, daemon will only respond to commands")
	}

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.stopCh)
}

func (s *Scheduler) runBatch(ctx context.Context) {
	if s.paused.Load() {
		log.Println("Scheduler paused, skipping batch")
		return
	}
	run, err := s.cleanser.RunBatch(ctx, "", s.cfg.Cleanser.BatchSize)
	if err != nil {
		log.Printf("Scheduled run error: %v", err)
		return
	}
	if s.export != nil && run.FieldsCleaned > 0 {
		if err := s.export.ExportRun(ctx, run.SourceID, run.ID); err != nil {
			log.Printf("Export error for run %s: %v", run.ID, err)
		}
	}
}

func (s *Scheduler) pollCommands(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cmds, err := s.store.GetPendingCommands()
			if err != nil {
				log.Printf("Error getting commands: %v", err)
				continue
			}

			for _, cmd := range cmds {
				log.Printf("Processing command: %s", cmd.Command)
				if err := s.handleCommand(ctx, &cmd); err != nil {
					log.Printf("Command error: %v", err)
				}
				if err := s.store.MarkCommandProcessed(cmd.ID); err != nil {
					log.Printf("Error marking command processed: %v", err)
				}
			}
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) handleCommand(ctx context.Context, cmd *models.Command) error {
	params, err := s.store.ParseCommandParams(cmd)
	if err != nil {
		return fmt.Errorf("parse command params: %w", err)
	}

	switch cmd.Command {
	case models.CmdCleanseNow:
		run, err := s.cleanser.RunBatch(ctx, params.Source, s.cfg.Cleanser.BatchSize)
		if err != nil {
			return err
		}
		log.Printf("Manual cleanse run %s finished", run.ID)
		return nil
	case models.CmdRecleanse:
		if s.recleanseWorker != nil {
			s.recleanseWorker.Trigger()
			log.Println("Re-cleanse worker triggered via command")
		}
		return nil
	case models.CmdExportNow:
		if s.export == nil {
			return nil
		}
		last, err := s.cleanser.LastRun(ctx, params.Source)
		if err != nil {
			return err
		}
		if last == nil {
			log.Println("No finished run to export")
			return nil
		}
		return s.export.ExportRun(ctx, last.SourceID, last.ID)
	case models.CmdPause:
		s.paused.Store(true)
		log.Println("Scheduler paused")
		return nil
	case models.CmdResume:
		s.paused.Store(false)
		log.Println("Scheduler resumed")
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd.Command)
	}
}

func (s *Scheduler) TriggerNow(ctx context.Context) error {
	run, err := s.cleanser.RunBatch(ctx, "", s.cfg.Cleanser.BatchSize)
	if err != nil {
		return err
	}
	if s.export != nil && run.FieldsCleaned > 0 {
		return s.export.ExportRun(ctx, run.SourceID, run.ID)
	}
	return nil
}
