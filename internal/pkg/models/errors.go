package models

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidStatus       = errors.New("invalid status transition")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidEntryType    = errors.New("entry type must be credit or debit")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidFairCode     = errors.New("wrong faircode")
	ErrMissingField        = errors.New("missing required field")
	ErrUnknownCollection   = errors.New("unknown collection")
	ErrAlreadyClaimed      = errors.New("bonus already claimed")
	ErrNotAvailable        = errors.New("bonus not yet available")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
