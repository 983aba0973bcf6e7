package schedule

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger routes cron's own diagnostics into slog.
type cronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule reports whether spec is accepted by the task scheduler.
func ValidateSchedule(spec string) error {
	_, err := cronParser.Parse(spec)
	return err
}

func newCron(logger *slog.Logger) *cron.Cron {
	l := cronLogger{logger: logger}
	return cron.New(
		cron.WithParser(cronParser),
		cron.WithLogger(l),
		cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
	)
}
