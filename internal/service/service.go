package service

import "errors"

// ErrInvalidArgument rejects a write whose required fields are absent.
// It is the only hard error the write path surfaces to callers.
var ErrInvalidArgument = errors.New("missing required fields")

// Auditor records one human-readable audit event, fire-and-forget.
// Satisfied by *audit.Recorder.
type Auditor interface {
	Record(event string)
}
