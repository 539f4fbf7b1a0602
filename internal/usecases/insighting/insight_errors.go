package insighting

import "errors"

var (
	ErrEmptyQuestion      = errors.New("question is required")
	ErrInsightUnavailable = errors.New("insight service unavailable")
)
