package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact rows are used.
	LayoutCompactWidth = 90

	// LayoutWideWidth is the minimum width to show the offer type column.
	LayoutWideWidth = 120
)

// Log view limits.
const (
	// LogTailLines is the number of log lines loaded into the log view.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the store.
	DefaultUIInterval = time.Second

	// OperationTimeout bounds a single user-triggered operation.
	OperationTimeout = 15 * time.Second
)

// headerLines is the height of the header plus command bar.
const headerLines = 3
