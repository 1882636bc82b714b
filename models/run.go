package models

import "time"

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// CleanseRun is one batch pass of the cleansing pipeline.
type CleanseRun struct {
	ID             string     `json:"id" db:"id"`
	SourceID       string     `json:"source_id" db:"source_id"`
	StartedAt      time.Time  `json:"started_at" db:"started_at"`
	FinishedAt     *time.Time `json:"finished_at" db:"finished_at"`
	Status         RunStatus  `json:"status" db:"status"`
	SnapshotsSeen  int        `json:"snapshots_seen" db:"snapshots_seen"`
	FieldsSeen     int        `json:"fields_seen" db:"fields_seen"`
	FieldsCleaned  int        `json:"fields_cleaned" db:"fields_cleaned"`
	FieldsDropped  int        `json:"fields_dropped" db:"fields_dropped"`
	SchemaFailures int        `json:"schema_failures" db:"schema_failures"`
	ErrorsCount    int        `json:"errors_count" db:"errors_count"`
}
