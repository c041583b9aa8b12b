package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrEmptyInput        = errors.New("no records to score")
	ErrWeightSum         = errors.New("weights must sum to 1")
	ErrNegativeWeight    = errors.New("weight must not be negative")
	ErrWeightRange       = errors.New("weight must not exceed 1")
	ErrUnknownRankMethod = errors.New("unknown rank method")
	ErrUnknownPolicy     = errors.New("unknown degenerate policy")
)
