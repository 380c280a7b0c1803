package ecdsa

import "errors"

var (
	// ErrPointDecode is returned when public key bytes do not decode to a
	// valid curve point.
	ErrPointDecode = errors.New("ecdsa: could not decode public key point")

	// ErrVerifyFailed is returned when the curve-level check rejects a
	// signature.
	ErrVerifyFailed = errors.New("ecdsa: signature verification failed")

	// ErrBadNonce is returned when an ephemeral scalar produces a
	// degenerate signature (r or s of zero).
	ErrBadNonce = errors.New("ecdsa: ephemeral key produces degenerate signature")

	// ErrKeyRecovery is returned when no private scalar consistent with
	// the supplied signature, ephemeral key and public key exists.
	ErrKeyRecovery = errors.New("ecdsa: could not recover private key")
)
