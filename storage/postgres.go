package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"estate_cleanser/models"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

// =============================================================================
// Key master
// =============================================================================

// UpsertKey registers a raw label in the key master and returns its id. The
// cleaned ASCII name is refreshed on conflict since the mapping table can
// gain entries between runs.
func (s *PostgresStore) UpsertKey(ctx context.Context, name, nameCleaned string) (int64, error) {
	query := `
		INSERT INTO estate_keys (name, name_cleaned, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET name_cleaned = EXCLUDED.name_cleaned
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, name, nameCleaned).Scan(&id)
	return id, err
}

func (s *PostgresStore) GetKeyByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `SELECT id FROM estate_keys WHERE name = $1`, name).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return id, err
}

// =============================================================================
// Cleaned-name master
// =============================================================================

func (s *PostgresStore) UpsertCleanedName(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO estate_cleaned_names (name, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, query, name).Scan(&id)
	return id, err
}

// =============================================================================
// Cleaned values
// =============================================================================

// UpsertCleanedValue writes one cleaned-JSON triple. One row per estate, key
// and phase; re-cleansing the same field overwrites the previous value and
// bumps the stored revision.
func (s *PostgresStore) UpsertCleanedValue(ctx context.Context, rec *models.CleanedRecord, keyID, cleanedID int64, revision int) error {
	query := `
		INSERT INTO estate_cleaned_values (
			id, estate_id, key_id, cleaned_id, value, period, revision, cleaned_at, run_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (estate_id, key_id) DO UPDATE SET
			cleaned_id = EXCLUDED.cleaned_id,
			value = EXCLUDED.value,
			period = EXCLUDED.period,
			revision = EXCLUDED.revision,
			cleaned_at = EXCLUDED.cleaned_at,
			run_id = EXCLUDED.run_id`

	_, err := s.pool.Exec(ctx, query,
		uuid.New(), rec.EstateID, keyID, cleanedID, rec.Value, rec.Period, revision, rec.CleanedAt, rec.RunID,
	)
	return err
}

// GetStaleCleanedEstates returns estate ids holding values cleaned with an
// older converter revision.
func (s *PostgresStore) GetStaleCleanedEstates(ctx context.Context, revision int, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT estate_id FROM estate_cleaned_values
		WHERE revision < $1
		ORDER BY estate_id
		LIMIT $2`

	rows, err := s.pool.Query(ctx, query, revision, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetCleanedValuesForRun loads every cleaned record written by one run, in
// estate order for stable export output.
func (s *PostgresStore) GetCleanedValuesForRun(ctx context.Context, runID string) ([]models.CleanedRecord, error) {
	query := `
		SELECT v.estate_id, k.name_cleaned, c.name, v.value, v.period, v.cleaned_at, v.run_id
		FROM estate_cleaned_values v
		JOIN estate_keys k ON k.id = v.key_id
		JOIN estate_cleaned_names c ON c.id = v.cleaned_id
		WHERE v.run_id = $1
		ORDER BY v.estate_id, k.name_cleaned`

	rows, err := s.pool.Query(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []models.CleanedRecord
	for rows.Next() {
		var rec models.CleanedRecord
		if err := rows.Scan(&rec.EstateID, &rec.KeyName, &rec.CleanedName, &rec.Value, &rec.Period, &rec.CleanedAt, &rec.RunID); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// =============================================================================
// Raw fields
// =============================================================================

func (s *PostgresStore) InsertRawFields(ctx context.Context, snap *models.Snapshot) error {
	query := `
		INSERT INTO estate_raw_fields (id, estate_id, source_id, label, value, scraped_at, run_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, f := range snap.Fields {
		if _, err := s.pool.Exec(ctx, query,
			uuid.New(), snap.EstateID, snap.SourceID, f.Label, f.Value, snap.ScrapedAt, snap.RunID,
		); err != nil {
			return err
		}
	}
	return nil
}

// GetRawFieldsForEstate loads the latest stored raw fields of one estate,
// used by the re-cleanse worker.
func (s *PostgresStore) GetRawFieldsForEstate(ctx context.Context, estateID string) ([]models.RawField, error) {
	query := `
		SELECT label, value FROM estate_raw_fields
		WHERE estate_id = $1
		ORDER BY scraped_at DESC, id`

	rows, err := s.pool.Query(ctx, query, estateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []models.RawField
	seen := map[string]struct{}{}
	for rows.Next() {
		var f models.RawField
		if err := rows.Scan(&f.Label, &f.Value); err != nil {
			return nil, err
		}
		if _, dup := seen[f.Label]; dup {
			continue
		}
		seen[f.Label] = struct{}{}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

// =============================================================================
// Cleanse runs
// =============================================================================

func (s *PostgresStore) CreateCleanseRun(ctx context.Context, run *models.CleanseRun) error {
	query := `
		INSERT INTO cleanse_runs (
			id, source_id, started_at, status, snapshots_seen, fields_seen,
			fields_cleaned, fields_dropped, schema_failures, errors_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.pool.Exec(ctx, query,
		run.ID, run.SourceID, run.StartedAt, run.Status, run.SnapshotsSeen, run.FieldsSeen,
		run.FieldsCleaned, run.FieldsDropped, run.SchemaFailures, run.ErrorsCount,
	)
	return err
}

func (s *PostgresStore) UpdateCleanseRun(ctx context.Context, run *models.CleanseRun) error {
	query := `
		UPDATE cleanse_runs SET
			finished_at = $2, status = $3, snapshots_seen = $4, fields_seen = $5,
			fields_cleaned = $6, fields_dropped = $7, schema_failures = $8, errors_count = $9
		WHERE id = $1`

	_, err := s.pool.Exec(ctx, query,
		run.ID, run.FinishedAt, run.Status, run.SnapshotsSeen, run.FieldsSeen,
		run.FieldsCleaned, run.FieldsDropped, run.SchemaFailures, run.ErrorsCount,
	)
	return err
}

func (s *PostgresStore) GetLastCleanseRun(ctx context.Context, sourceID string) (*models.CleanseRun, error) {
	query := `
		SELECT id, source_id, started_at, finished_at, status, snapshots_seen,
			fields_seen, fields_cleaned, fields_dropped, schema_failures, errors_count
		FROM cleanse_runs
		WHERE source_id = $1
		ORDER BY started_at DESC
		LIMIT 1`

	var run models.CleanseRun
	err := s.pool.QueryRow(ctx, query, sourceID).Scan(
		&run.ID, &run.SourceID, &run.StartedAt, &run.FinishedAt, &run.Status, &run.SnapshotsSeen,
		&run.FieldsSeen, &run.FieldsCleaned, &run.FieldsDropped, &run.SchemaFailures, &run.ErrorsCount,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
