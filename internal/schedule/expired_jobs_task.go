package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"jobboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpiredJobsCloser is satisfied by *commands.CloseExpiredJobsCommandHandler.
type ExpiredJobsCloser interface {
	Handle(ctx context.Context, cmd commands.CloseExpiredJobsCommand) (int, error)
}

// ExpiredJobsTask periodically closes postings past their application deadline.
type ExpiredJobsTask struct {
	handler  ExpiredJobsCloser
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

// NewExpiredJobsTask validates schedule up front so a typo fails bootstrap
// instead of the first tick.
func NewExpiredJobsTask(handler ExpiredJobsCloser, schedule string, logger *slog.Logger) (*ExpiredJobsTask, error) {
	if err := ValidateSchedule(schedule); err != nil {
		return nil, fmt.Errorf("invalid expire jobs schedule %q: %w", schedule, err)
	}

	logger = logger.With("component", "expired_jobs_task")
	return &ExpiredJobsTask{
		handler:  handler,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     newCron(logger),
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (t *ExpiredJobsTask) Name() string {
	return "expired_jobs"
}

// Run performs one pass and returns the number of postings closed.
func (t *ExpiredJobsTask) Run(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd, err := commands.NewCloseExpiredJobsCommand(t.now())
	if err != nil {
		return 0, err
	}

	closed, err := t.handler.Handle(ctx, cmd)
	if err != nil {
		t.logger.ErrorContext(ctx, "Closing expired jobs failed", "error", err, "closed", closed)
		return closed, err
	}

	if closed > 0 {
		t.logger.InfoContext(ctx, "Closed expired jobs", "closed", closed)
	}
	return closed, nil
}

func (t *ExpiredJobsTask) Start() error {
	_, err := t.cron.AddFunc(t.schedule, func() {
		_, _ = t.Run(context.Background())
	})
	if err != nil {
		return err
	}

	t.cron.Start()
	t.logger.InfoContext(context.Background(), "Expired jobs task started", "schedule", t.schedule)
	return nil
}

// Stop waits for a running pass to finish or ctx to end, whichever comes first.
func (t *ExpiredJobsTask) Stop(ctx context.Context) {
	select {
	case <-t.cron.Stop().Done():
	case <-ctx.Done():
	}
	t.logger.InfoContext(ctx, "Expired jobs task stopped")
}
