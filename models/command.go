package models

import (
	"encoding/json"
	"time"
)

type CommandType string

const (
	CmdCleanseNow CommandType = "cleanse_now"
	CmdRecleanse  CommandType = "recleanse"
	CmdExportNow  CommandType = "export_now"
	CmdPause      CommandType = "pause"
	CmdResume     CommandType = "resume"
)

type Command struct {
	ID          int64           `json:"id" db:"id"`
	Command     CommandType     `json:"command" db:"command"`
	Params      json.RawMessage `json:"params" db:"params"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time      `json:"processed_at" db:"processed_at"`
}

type CommandParams struct {
	Source   string `json:"source,omitempty"`
	EstateID string `json:"estate_id,omitempty"`
}
