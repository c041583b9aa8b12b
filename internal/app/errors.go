package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted     = errors.New("service not started")
	ErrNoDataset      = errors.New("no dataset configured")
	ErrInvalidWeights = errors.New("invalid weights")
	ErrNotScored      = errors.New("ranking not scored")
)
