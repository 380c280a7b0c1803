package keys

import "errors"

var (
	// ErrInvalidPrivateKey is returned when 32 bytes do not form a valid
	// scalar in [1, N-1].
	ErrInvalidPrivateKey = errors.New("keys: invalid private key")

	// ErrInvalidPublicKey is returned when bytes do not decode to a point
	// on the curve.
	ErrInvalidPublicKey = errors.New("keys: invalid public key")

	// ErrRandomness is returned when the injected entropy source fails.
	ErrRandomness = errors.New("keys: could not generate randomness")

	// ErrInvalidWIF is returned for malformed WIF strings (length, version
	// byte or checksum).
	ErrInvalidWIF = errors.New("keys: invalid WIF")

	// ErrInvalidDER is returned for malformed DER signature encodings.
	ErrInvalidDER = errors.New("keys: invalid DER signature")

	// ErrInvalidCompact is returned for malformed compact signature
	// encodings.
	ErrInvalidCompact = errors.New("keys: invalid compact signature")
)
