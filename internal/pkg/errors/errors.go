package errors

import "errors"

// Custom application errors
var (
	ErrReminderNotFound  = errors.New("reminder not found")                         // Unknown reminder id on update/delete
	ErrDateOutOfRange    = errors.New("reminder date is outside the allowed range") // Business rule violation
	ErrReminderRequired  = errors.New("reminder must not be nil")                   // Precondition violation
	ErrDateRequired      = errors.New("date is required")                           // Precondition violation
	ErrDatabaseOperation = errors.New("database operation failed")                  // Generic database error
	ErrScheduling        = errors.New("scheduling failed")                          // Cron job registration error
	ErrInternalServer    = errors.New("internal server error")                      // Generic internal error
)
