package cron

import (
	"context"

	"github.com/eventpulse/eventpulse/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartNearbyEventJobs schedules the nearby-events scan and returns the
// running cron so the caller can stop it.
func StartNearbyEventJobs(notifier *jobs.NearbyEventsNotifier, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if err := notifier.RunScan(context.Background()); err != nil {
			logrus.WithError(err).Error("Nearby events scan failed")
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
