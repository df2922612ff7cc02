package service

// RetentionService periodically deletes reminders whose date has passed
// the configured retention window.
type RetentionService interface {
	// Start registers the periodic sweep job.
	Start() error
	// Stop cancels the sweep job.
	Stop()
}
