// Package schedule runs the job board's periodic background tasks on
// github.com/robfig/cron/v3.
//
// # Tasks
//
// ExpiredJobsTask closes open postings whose application deadline has passed.
// Its schedule comes from EXPIRE_JOBS_SCHEDULE and accepts standard five-field
// cron, an optional leading seconds field and descriptors such as "@every 1m".
//
// # Usage
//
//	manager := schedule.NewTaskManager(logger, expiredJobsTask)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll(ctx)
//
// A run that is still going when the next tick fires is skipped, and a
// panicking run is recovered and logged.
package schedule
