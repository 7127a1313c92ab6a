package domain

import "errors"

// Directory authoring errors, reported by the directory lint.
var (
	ErrEmptyDirectory     = errors.New("directory is empty")
	ErrDuplicateAgentID   = errors.New("duplicate agent id")
	ErrMissingAgentField  = errors.New("missing required agent field")
	ErrInvalidDestination = errors.New("destination must be an absolute http(s) URL")
	ErrUnknownIcon        = errors.New("unknown icon")
	ErrUnknownTheme       = errors.New("unknown theme token")
)

// Rendering errors.
var (
	ErrUnknownLayout = errors.New("unknown layout")
)

// Lookup errors.
var (
	ErrAgentNotFound = errors.New("agent not found")
)
