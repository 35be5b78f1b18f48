package service

import "time"

const (
	retryDelay                = 5 * time.Second
	delegationRefreshInterval = 10 * time.Minute

	journalBatchSize        = 100
	journalFlushInterval    = 10 * time.Second
	journalFlushesPerSecond = 2
	journalRetries          = 3
)
