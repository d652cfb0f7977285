package ingester

import "time"

const (
	defaultRetryDelay = 500 * time.Millisecond

	// outputs saved per store call during resolution
	outputChunkSize = 1000

	pollInterval       = 5 * time.Second
	errorSleepDuration = 5 * time.Second
	maxReorgDepth      = 100

	mempoolDedupTTL         = 30 * time.Minute
	mempoolDedupCleanup     = 10 * time.Minute
	mempoolPollInterval     = 10 * time.Second
	mempoolFlushSize        = 500
	mempoolFlushInterval    = time.Second
	mempoolFlushesPerSecond = 5
)

const (
	outcomeAccepted  = "accepted"
	outcomeDuplicate = "duplicate"
	outcomeRejected  = "rejected"
	outcomeKnown     = "known"
)
