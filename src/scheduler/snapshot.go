package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"fintrack/src/controllers"
)

const snapshotTimeout = 30 * time.Second

// NewSnapshotTask schedules the automatic daily net-worth snapshot. Each run
// upserts the snapshot for the current date, so a restart on the same day
// overwrites rather than duplicates.
func NewSnapshotTask(cronSpec string, netWorth controllers.NetWorthControllerI, logger *logrus.Logger) (*ScheduledTask, error) {
	return NewScheduledTask(cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		result, err := netWorth.SaveSnapshot(ctx, nil)
		if err != nil {
			logger.Errorf("scheduled net-worth snapshot failed: %v", err)
			return
		}
		logger.WithFields(logrus.Fields{
			"date":      result.Date.Format("2006-01-02"),
			"net_worth": result.NetWorth,
			"created":   result.Created,
		}).Info("net-worth snapshot saved")
	})
}
