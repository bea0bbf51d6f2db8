// Package job contains scheduled maintenance jobs run by the web server.
package job

import (
	"storefront/database"
	"storefront/logger"
)

// CheckpointJob flushes the sqlite WAL into the main database file so
// the on-disk db stays compact between restarts.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run is an interface method of the cron Job interface.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("checkpoint job err:", err)
	}
}
