package keys

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/suffix-labs/bsv-primitives/pkg/hash"
)

// PublicKey is a point on the secp256k1 curve.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// ParsePublicKey decodes a public key point from its compressed (33-byte)
// or uncompressed (65-byte) encoding.
func ParsePublicKey(pubKeyBytes []byte) (*PublicKey, error) {
	pubKey, err := secp256k1.ParsePubKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &PublicKey{key: pubKey}, nil
}

// SerializeCompressed returns the 33-byte compressed encoding.
func (pub *PublicKey) SerializeCompressed() []byte {
	return pub.key.SerializeCompressed()
}

// SerializeUncompressed returns the 65-byte uncompressed encoding.
func (pub *PublicKey) SerializeUncompressed() []byte {
	return pub.key.SerializeUncompressed()
}

// Bytes returns the compressed public key bytes.
func (pub *PublicKey) Bytes() []byte {
	return pub.key.SerializeCompressed()
}

// Hash160 returns RIPEMD160(SHA256(compressed pubkey)), the material for
// P2PKH addresses and BIP32 parent fingerprints.
func (pub *PublicKey) Hash160() [20]byte {
	return hash.Hash160(pub.SerializeCompressed())
}

// IsEqual reports whether both keys describe the same curve point.
func (pub *PublicKey) IsEqual(other *PublicKey) bool {
	return pub.key.IsEqual(other.key)
}

// Point returns the underlying curve point for engine-level operations.
func (pub *PublicKey) Point() *secp256k1.PublicKey {
	return pub.key
}
