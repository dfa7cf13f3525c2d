package engine

import (
	"errors"

	"github.com/tartampluch/go-lifecalc/internal/config"
)

// Sentinel errors surfaced to the presentation layer as validation messages.
var (
	// ErrInvalidInput rejects rank inputs (non-positive spread, empty population)
	// and malformed milestone tables before anything is computed.
	ErrInvalidInput = errors.New(config.ErrInvalidInput)

	// ErrInvalidDate rejects malformed or unrepresentable dates.
	ErrInvalidDate = errors.New(config.ErrInvalidDate)
)
