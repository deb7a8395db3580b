package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

// digestTimeout bounds a single scheduled digest run.
const digestTimeout = time.Minute

// Digester posts the leaderboard digest.
type Digester interface {
	PostDigest(ctx context.Context, dryRun bool) error
}

// Start schedules the leaderboard digest on a standard five-field cron
// expression and returns a function that stops the scheduler. An empty
// expression disables the digest.
func Start(crontab string, digester Digester) (func(), error) {
	if crontab == "" {
		log.Info("Digest schedule disabled")
		return func() {}, nil
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	job, err := sched.NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(runDigest, digester),
		gocron.WithName("leaderboard-digest"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		sched.Shutdown()
		return nil, fmt.Errorf("invalid digest schedule %q: %w", crontab, err)
	}
	sched.Start()

	if next, err := job.NextRun(); err == nil {
		log.Info("Scheduled leaderboard digest", "cron", crontab, "nextRun", next)
	}

	return func() {
		if err := sched.Shutdown(); err != nil {
			log.Error("Failed to stop scheduler", "error", err)
		}
	}, nil
}

func runDigest(digester Digester) {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	log.Info("[Scheduler] Running leaderboard digest")
	if err := digester.PostDigest(ctx, false); err != nil {
		log.Error("[Scheduler] Leaderboard digest failed", "error", err)
	}
}
