package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrEmptySnapshot = errors.New("empty catalog snapshot")
)
