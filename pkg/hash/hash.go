// Package hash collects the digest primitives the rest of the library
// depends on: SHA-256, double SHA-256, RIPEMD160, the HASH160 composition
// and HMAC-SHA512.
//
// Double SHA-256 is the ledger's workhorse (txids, signing digests,
// Base58Check checksums); HASH160 produces address and fingerprint material;
// HMAC-SHA512 drives BIP32 child key derivation.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns SHA-256(data).
func Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Sha256d returns SHA-256(SHA-256(data)).
func Sha256d(data []byte) [32]byte {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Checksum returns the first four bytes of Sha256d(data), the Base58Check
// trailer used by WIF and extended key serialization.
func Checksum(data []byte) [4]byte {
	var out [4]byte
	sum := Sha256d(data)
	copy(out[:], sum[:4])
	return out
}

// Ripemd160 returns RIPEMD160(data).
func Ripemd160(data []byte) [20]byte {
	var out [20]byte
	h := ripemd160.New()
	h.Write(data)
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160 returns RIPEMD160(SHA-256(data)).
func Hash160(data []byte) [20]byte {
	sum := sha256.Sum256(data)
	return Ripemd160(sum[:])
}

// HmacSha512 returns HMAC-SHA512 of data under key.
func HmacSha512(key, data []byte) [64]byte {
	var out [64]byte
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	copy(out[:], mac.Sum(nil))
	return out
}
