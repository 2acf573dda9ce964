package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNoRecords     = errors.New("no valid records found")
	ErrNoText        = errors.New("no messages with extractable text")
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid configuration")
)
