package model

import "time"

// LoadSummary captures metrics from a single file load run.
type LoadSummary struct {
	FilePath      string
	FileSHA256    string
	SourceFileID  int64
	LoadBatchID   string
	AlreadyLoaded bool
	RowsRead      int64
	RowsLoaded    int64
	RowsRejected  int64 // missing or invalid eircode
	RowsFiltered  int64 // routing key outside the allow-list
	RowsByRouting map[string]int64
	DurationStage time.Duration
	DurationTotal time.Duration
}
