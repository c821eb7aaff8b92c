package config

import (
	"fmt"
	"time"
)

type WorkerConfig struct {
	WorkerCount  int
	PollInterval time.Duration
}

// DefaultWorkerConfig reads <PREFIX>_WORKER_COUNT and <PREFIX>_POLL_INTERVAL,
// e.g. INDEX_WORKER_COUNT=3 and INDEX_POLL_INTERVAL=2s.
func DefaultWorkerConfig(prefix string) *WorkerConfig {
	return &WorkerConfig{
		WorkerCount:  getEnvPositiveInt(fmt.Sprintf("%s_WORKER_COUNT", prefix), 1),
		PollInterval: getEnvDuration(fmt.Sprintf("%s_POLL_INTERVAL", prefix), 5*time.Second),
	}
}
