package bip32

import "errors"

var (
	// ErrRandomness is returned when the injected entropy source cannot
	// supply a 64-byte seed.
	ErrRandomness = errors.New("bip32: could not generate randomness")

	// ErrInvalidSeed is returned when seed material does not yield a valid
	// master private scalar.
	ErrInvalidSeed = errors.New("bip32: invalid seed")

	// ErrDerivation is returned when child derivation fails: IL at or
	// above the curve order, or a zero child scalar. Both cases are
	// astronomically rare with honest inputs.
	ErrDerivation = errors.New("bip32: could not derive child key")

	// ErrBadChecksum is returned when a serialized extended key's trailing
	// checksum does not match its payload.
	ErrBadChecksum = errors.New("bip32: bad extended key checksum")

	// ErrInvalidKeyLength is returned when a serialized extended key has
	// the wrong byte length.
	ErrInvalidKeyLength = errors.New("bip32: serialized extended key length is invalid")

	// ErrInvalidVersion is returned when a serialized extended key does
	// not carry the private-key version prefix.
	ErrInvalidVersion = errors.New("bip32: unknown extended key version")

	// ErrInvalidKeyData is returned when the key-data field of a
	// serialized extended key does not begin with the 0x00 private-key
	// marker byte.
	ErrInvalidKeyData = errors.New("bip32: extended key data is not a private key")

	// ErrBadPath is returned for derivation path strings that do not
	// match the m(/index['|h])* grammar.
	ErrBadPath = errors.New("bip32: invalid derivation path")
)
