package ecdsa

import "github.com/suffix-labs/bsv-primitives/pkg/hash"

// SigningHash selects the digest applied to a message before the scalar
// math. Transaction sighashes use double SHA-256; single SHA-256 covers
// ad-hoc message signing.
type SigningHash int

const (
	SigningHashSha256 SigningHash = iota
	SigningHashSha256d
)

// Digest computes the message digest for the selected algorithm.
func (h SigningHash) Digest(message []byte) [32]byte {
	if h == SigningHashSha256d {
		return hash.Sha256d(message)
	}
	return hash.Sha256(message)
}

// reverse32 flips digest byte order. Some historical signer implementations
// fed the digest to the curve little-endian-first; the reverseK flag on
// verification selects that direction so both populations of signatures
// stay checkable.
func reverse32(d [32]byte) [32]byte {
	var out [32]byte
	for i := range d {
		out[31-i] = d[i]
	}
	return out
}
