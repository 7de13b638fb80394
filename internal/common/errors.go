// Package common defines shared constants and sentinel errors used across
// client and server layers of FileVault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Authentication errors (anonymous caller). Checked before any state
	// lookup.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Authorization errors: the caller exists but may not touch the file.
	ErrPermissionDenied = errors.New("permission denied")

	// Not-found errors, distinguished from authorization errors so clients
	// can tell "doesn't exist" from "exists but you can't touch it".
	ErrFileNotFound = errors.New("file not found")
	ErrUserNotFound = errors.New("user not found")

	// File state errors.
	ErrFileNotUploaded = errors.New("file not uploaded")
	ErrFilePending     = errors.New("file is pending upload")

	// Upload protocol violations. The reference behavior treats these as
	// fatal; here they are typed so a broken client cannot take the server
	// down with it.
	ErrUnexpectedState   = errors.New("unexpected file content state")
	ErrChunkOutOfRange   = errors.New("chunk id out of range")
	ErrChunkExists       = errors.New("chunk already uploaded")
	ErrInconsistentState = errors.New("inconsistent file state")

	// Validation errors.
	ErrInvalidInput = errors.New("invalid input")

	// Blob storage errors.
	ErrUnsupportedProvider = errors.New("unsupported storage provider")

	// Key-derivation gateway / cryptographic failures. Always recoverable,
	// never retried by the core.
	ErrDerivationFailed = errors.New("key derivation failed")
	ErrEncryptionFailed = errors.New("encryption failed")
	ErrDecryptionFailed = errors.New("decryption failed")

	// Auth token errors.
	ErrInvalidToken = errors.New("invalid token")

	// Generic internal error.
	ErrInternal = errors.New("internal error")
)
