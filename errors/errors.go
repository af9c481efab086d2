package errors

import "fmt"

var (
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrEmptyWords            = fmt.Errorf("no words have been found")
	ErrNoActiveSession       = fmt.Errorf("no active session")
	ErrUnknownConversation   = fmt.Errorf("unknown conversation")
	ErrInvalidProfile        = fmt.Errorf("invalid profile")
	ErrUnsupportedAttachment = fmt.Errorf("unsupported attachment type")
	ErrMissingAPIKey         = fmt.Errorf("missing ice breaker API key")
	ErrEmptySuggestion       = fmt.Errorf("empty suggestion returned")
)
