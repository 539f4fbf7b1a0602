package domain

import "errors"

var (
	ErrMissingSaleDate  = errors.New("sale date is required")
	ErrMissingCostMonth = errors.New("cost record month is required")
	ErrNegativeAmount   = errors.New("amount must not be negative")
)
