package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrUnknownDepartment = errors.New("department not found")
	ErrMissingColumn     = errors.New("required column missing")
	ErrEmptyDataset      = errors.New("dataset has no complete rows")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrNoSheet           = errors.New("no worksheet found")
)
