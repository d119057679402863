// Package common defines shared constants and sentinel errors used across
// client layers of medianest. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Failure taxonomy of a single gallery operation. Every failure is
	// terminal for that operation and is recovered where it happens.
	ErrTransport        = errors.New("transport failure")
	ErrStoreRejection   = errors.New("store rejected request")
	ErrPermissionDenied = errors.New("permission denied")
	ErrGuardRejection   = errors.New("PIN incorrect")

	// Flow-control errors.
	ErrUploadInFlight    = errors.New("upload already in progress")
	ErrNoPendingDeletion = errors.New("no deletion pending")
	ErrNotFound          = errors.New("not found")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)
