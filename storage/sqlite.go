package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"estate_cleanser/models"
)

// SQLiteStore is the local operational store: the pending snapshot queue the
// collector feeds, the daemon command channel, and per-source stats. Domain
// data lives in Postgres.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshot_queue (
		id TEXT PRIMARY KEY,
		estate_id TEXT NOT NULL,
		source_id TEXT NOT NULL,
		url TEXT,
		fields JSON,
		scraped_at DATETIME,
		enqueued_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		processed_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY,
		command TEXT,
		params JSON,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		processed_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS source_stats (
		source_id TEXT PRIMARY KEY,
		last_run_at DATETIME,
		last_run_status TEXT,
		snapshots_processed INTEGER,
		fields_cleaned INTEGER,
		success_rate REAL,
		avg_run_duration_sec INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_queue_pending ON snapshot_queue(source_id, enqueued_at) WHERE processed_at IS NULL;
	CREATE INDEX IF NOT EXISTS idx_queue_estate ON snapshot_queue(estate_id);
	CREATE INDEX IF NOT EXISTS idx_commands_pending ON commands(processed_at) WHERE processed_at IS NULL;
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// Snapshot queue
// =============================================================================

func (s *SQLiteStore) EnqueueSnapshot(snap *models.Snapshot) error {
	fields, err := json.Marshal(snap.Fields)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshot_queue (id, estate_id, source_id, url, fields, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		snap.ID, snap.EstateID, snap.SourceID, snap.URL, string(fields), snap.ScrapedAt)
	return err
}

// GetPendingSnapshots returns the oldest unprocessed snapshots. An empty
// sourceID drains all sources.
func (s *SQLiteStore) GetPendingSnapshots(sourceID string, limit int) ([]models.Snapshot, error) {
	query := `
		SELECT id, estate_id, source_id, url, fields, scraped_at
		FROM snapshot_queue WHERE processed_at IS NULL`
	args := []any{}
	if sourceID != "" {
		query += ` AND source_id = ?`
		args = append(args, sourceID)
	}
	query += ` ORDER BY enqueued_at LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []models.Snapshot
	for rows.Next() {
		var snap models.Snapshot
		var fields sql.NullString
		if err := rows.Scan(&snap.ID, &snap.EstateID, &snap.SourceID, &snap.URL, &fields, &snap.ScrapedAt); err != nil {
			return nil, err
		}
		if fields.Valid {
			if err := json.Unmarshal([]byte(fields.String), &snap.Fields); err != nil {
				return nil, err
			}
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (s *SQLiteStore) MarkSnapshotProcessed(id string) error {
	_, err := s.db.Exec(`UPDATE snapshot_queue SET processed_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

func (s *SQLiteStore) PendingSnapshotCount(sourceID string) (int, error) {
	var count int
	var err error
	if sourceID == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM snapshot_queue WHERE processed_at IS NULL`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM snapshot_queue WHERE processed_at IS NULL AND source_id = ?`, sourceID).Scan(&count)
	}
	return count, err
}

// RequeueEstate reopens the latest snapshot of an estate so the next batch
// picks it up again. Used by the re-cleanse worker.
func (s *SQLiteStore) RequeueEstate(estateID string) error {
	_, err := s.db.Exec(`
		UPDATE snapshot_queue SET processed_at = NULL
		WHERE id = (
			SELECT id FROM snapshot_queue WHERE estate_id = ?
			ORDER BY scraped_at DESC LIMIT 1
		)`, estateID)
	return err
}

// =============================================================================
// Commands
// =============================================================================

func (s *SQLiteStore) GetPendingCommands() ([]models.Command, error) {
	rows, err := s.db.Query(`
		SELECT id, command, params, created_at, processed_at
		FROM commands WHERE processed_at IS NULL ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cmds []models.Command
	for rows.Next() {
		var cmd models.Command
		var params sql.NullString
		if err := rows.Scan(&cmd.ID, &cmd.Command, &params, &cmd.CreatedAt, &cmd.ProcessedAt); err != nil {
			return nil, err
		}
		if params.Valid {
			cmd.Params = json.RawMessage(params.String)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, rows.Err()
}

func (s *SQLiteStore) MarkCommandProcessed(id int64) error {
	_, err := s.db.Exec(`UPDATE commands SET processed_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

func (s *SQLiteStore) ParseCommandParams(cmd *models.Command) (*models.CommandParams, error) {
	if cmd.Params == nil || string(cmd.Params) == "null" {
		return &models.CommandParams{}, nil
	}
	var params models.CommandParams
	if err := json.Unmarshal(cmd.Params, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// =============================================================================
// Source stats
// =============================================================================

func (s *SQLiteStore) UpdateSourceStats(sourceID string, run *models.CleanseRun) error {
	var durationSec *int64
	if run.FinishedAt != nil {
		d := int64(run.FinishedAt.Sub(run.StartedAt).Seconds())
		durationSec = &d
	}
	_, err := s.db.Exec(`
		INSERT INTO source_stats (source_id, last_run_at, last_run_status, snapshots_processed, fields_cleaned, avg_run_duration_sec)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id) DO UPDATE SET
			last_run_at = excluded.last_run_at,
			last_run_status = excluded.last_run_status,
			snapshots_processed = snapshots_processed + excluded.snapshots_processed,
			fields_cleaned = fields_cleaned + excluded.fields_cleaned,
			avg_run_duration_sec = excluded.avg_run_duration_sec`,
		sourceID, run.StartedAt, run.Status, run.SnapshotsSeen, run.FieldsCleaned, durationSec)
	return err
}
