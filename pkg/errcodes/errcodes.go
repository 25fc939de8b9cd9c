package errcodes

import "errors"

var (
	ErrNoRecordFound    = errors.New("record not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrContextCancelled = errors.New("context cancelled")
	ErrAgentUnavailable = errors.New("generation agent unavailable")
	ErrAgentTimeout     = errors.New("generation agent timed out")
)
