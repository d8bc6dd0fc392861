package constants

import "time"

// Timeout and interval constants used throughout the application.
const (
	// LoggerFlushInterval is how long the stdout log writer waits for a
	// new message before it flushes what it has buffered.
	LoggerFlushInterval = 100 * time.Millisecond

	// ShutdownGraceDuration is how long the HTTP daemon waits for
	// in-flight searches to drain after a shutdown signal.
	ShutdownGraceDuration = 5 * time.Second

	// ConfigWatchDebounce coalesces bursts of config file write events.
	ConfigWatchDebounce = 250 * time.Millisecond

	// DayDuration represents 24 hours, used for daily log file rotation.
	DayDuration = 24 * time.Hour
)
