package models

import (
	"encoding/json"
	"time"
)

// RawField is one observed label/value pair from a listing snapshot,
// as delivered by the upstream collector. Never mutated after creation.
type RawField struct {
	Label string `json:"label" db:"label"`
	Value string `json:"value" db:"value"`
}

// Snapshot is one scrape of a single listing: the raw fields observed at
// one point in time, queued locally until the cleansing pipeline picks it up.
type Snapshot struct {
	ID        string     `json:"id" db:"id"`
	EstateID  string     `json:"estate_id" db:"estate_id"`
	SourceID  string     `json:"source_id" db:"source_id"`
	URL       string     `json:"url" db:"url"`
	Fields    []RawField `json:"fields"`
	ScrapedAt time.Time  `json:"scraped_at" db:"scraped_at"`
	RunID     string     `json:"run_id" db:"run_id"`
}

// CleanedRecord is the output of the pipeline for one RawField: the canonical
// field name the label resolved to plus the converter's JSON value.
type CleanedRecord struct {
	EstateID    string          `json:"estate_id" db:"estate_id"`
	KeyName     string          `json:"key_name" db:"key_name"`
	CleanedName string          `json:"cleaned_name" db:"cleaned_name"`
	Value       json.RawMessage `json:"value" db:"value"`
	Period      *int            `json:"period,omitempty" db:"period"`
	CleanedAt   time.Time       `json:"cleaned_at" db:"cleaned_at"`
	RunID       string          `json:"run_id" db:"run_id"`
}
