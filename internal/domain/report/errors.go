package report

import "errors"

var (
	ErrNotFound          = errors.New("day report not found")
	ErrAdjustmentTooBig  = errors.New("adjustment exceeds the day's cash")
	ErrAdjustmentStepped = errors.New("adjustment must be a multiple of 10000 yen")
)
