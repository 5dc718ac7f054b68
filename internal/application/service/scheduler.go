package service

import "context"

// SchedulerService runs the periodic deadline scan.
type SchedulerService interface {
	// Start registers the deadline scan and starts the scheduler.
	Start() error
	// ScanDeadlines notifies owners of incomplete reminders coming due within
	// the lead time and returns how many notifications were sent.
	ScanDeadlines(ctx context.Context) (int, error)
	// Stop stops the underlying scheduler.
	Stop()
}
