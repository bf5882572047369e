package dto

import "time"

type StartOutput struct {
	SessionID string
	StartedAt time.Time
}

type StopOutput struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int64
}

type StatusOutput struct {
	Active         bool
	SessionID      string
	StartedAt      time.Time
	ElapsedSeconds int64
}

// AddInput carries the raw command arguments. Exactly one of Range or
// Duration must be set; Date defaults to today when empty.
type AddInput struct {
	Date     string
	Range    string
	Duration string
}

type AddOutput struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int64
}

// EditInput holds new endpoint texts for one session. Each may be an
// absolute clock time applied to the original endpoint's date, or a relative
// adjustment like "+15m". Empty means leave unchanged.
type EditInput struct {
	IDPrefix string
	Start    string
	End      string
}

type EditOutput struct {
	SessionID       string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int64
}

type DeleteOutput struct {
	SessionID string
}

// ListInput selects sessions. Date, All and Filter are mutually exclusive;
// with none set the list defaults to today.
type ListInput struct {
	Date       string
	All        bool
	Filter     string
	Descending bool
}

type SessionView struct {
	ID              string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationSeconds int64
}

// Record is the import/export wire shape. ID and Duration are informational
// on import: ids are always regenerated and duration recomputed.
type Record struct {
	ID       string `json:"id,omitempty"`
	Start    string `json:"start_time"`
	End      string `json:"end_time"`
	Duration int64  `json:"duration,omitempty"`
}

type ImportInput struct {
	Records       []Record
	SkipConflicts bool
}

type SkippedRecord struct {
	Record Record
	Reason string
}

type ImportOutput struct {
	Imported int
	Skipped  []SkippedRecord
}

type ExportInput struct {
	From string
	To   string
}
