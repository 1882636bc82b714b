package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estate_cleanser/config"
	"estate_cleanser/logging"
	"estate_cleanser/scheduler"
	"estate_cleanser/services"
	"estate_cleanser/storage"
	"estate_cleanser/workers"
)

var (
	cleanseNow = flag.Bool("cleanse", false, "Run one cleanse batch and exit")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	logFile, err := logging.Setup("cleanser.log")
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	log.Println("Starting estate_cleanser...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Loaded %d source configs", len(cfg.Sources))
	for id, source := range cfg.Sources {
		log.Printf("  - %s (%s)", source.Name, id)
	}

	ctx := context.Background()

	// Postgres holds the key masters and cleaned values
	pgStore, err := storage.NewPostgresStore(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer pgStore.Close()
	log.Printf("Connected to Postgres: %s", maskConnectionString(cfg.Postgres.DSN))

	// SQLite holds the snapshot queue and daemon commands
	sqliteStore, err := storage.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open SQLite: %v", err)
	}
	defer sqliteStore.Close()
	log.Printf("SQLite database: %s", cfg.DBPath)

	var exporter *storage.S3Exporter
	if cfg.S3.AccessKey != "" {
		exporter, err = storage.NewS3Exporter(ctx, storage.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKey,
			SecretAccessKey: cfg.S3.SecretKey,
		})
		if err != nil {
			log.Fatalf("Failed to set up S3 exporter: %v", err)
		}
		log.Printf("S3 export bucket: %s", cfg.S3.Bucket)
	} else {
		log.Println("S3 export disabled (no credentials)")
	}

	cleanseService := services.NewCleanseService(pgStore, sqliteStore)
	exportService := services.NewExportService(pgStore, exporter)

	log.Println("Services initialized")

	if *cleanseNow {
		log.Println("Running cleanse batch...")
		run, err := cleanseService.RunBatch(ctx, "", cfg.Cleanser.BatchSize)
		if err != nil {
			log.Fatalf("Cleanse failed: %v", err)
		}
		if exporter != nil && run.FieldsCleaned > 0 {
			if err := exportService.ExportRun(ctx, run.SourceID, run.ID); err != nil {
				log.Fatalf("Export failed: %v", err)
			}
		}
		log.Println("Cleanse complete!")
		return
	}

	// Daemon mode
	sched := scheduler.New(cfg, cleanseService, exportService, sqliteStore)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	recleanseWorker := workers.NewRecleanseWorker(pgStore, cleanseService, 24*time.Hour)
	go recleanseWorker.Run(ctx)
	sched.SetWorkers(recleanseWorker)
	log.Println("Re-cleanse worker started")

	log.Println("Daemon running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	sched.Stop()
	log.Println("Goodbye!")
}

// maskConnectionString masks password in connection string for logging
func maskConnectionString(connStr string) string {
	// Simple mask - find :// and mask until @
	start := 0
	for i := 0; i < len(connStr)-3; i++ {
		if connStr[i:i+3] == "://" {
			start = i + 3
			break
		}
	}
	if start == 0 {
		return connStr
	}

	// Find : after user
	colonIdx := -1
	atIdx := -1
	for i := start; i < len(connStr); i++ {
		if connStr[i] == ':' && colonIdx == -1 {
			colonIdx = i
		}
		if connStr[i] == '@' {
			atIdx = i
			break
		}
	}

	if colonIdx > 0 && atIdx > colonIdx {
		return connStr[:colonIdx+1] + "****" + connStr[atIdx:]
	}
	return connStr
}
