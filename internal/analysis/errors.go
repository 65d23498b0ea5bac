package analysis

import "errors"

// Input errors
var (
	ErrEmptyText     = errors.New("text cannot be empty")
	ErrTextTooLong   = errors.New("text exceeds maximum length")
	ErrBatchTooLarge = errors.New("too many texts in batch")
)

// Inference errors
var (
	ErrInferenceFailed  = errors.New("inference failed")
	ErrModelUnavailable = errors.New("model unavailable")
)

// IsInputError reports whether err was caused by the caller's payload.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyText) || errors.Is(err, ErrTextTooLong) || errors.Is(err, ErrBatchTooLarge)
}
