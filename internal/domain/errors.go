package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrBusy              = errors.New("exchange already in progress")
	ErrRecording         = errors.New("already recording")
	ErrNotRecording      = errors.New("not recording")
	ErrAssistantNotFound = errors.New("assistant command not found")
	ErrNoAPIKey          = errors.New("api key not configured")
	ErrLicenseRequired   = errors.New("license required")
)
