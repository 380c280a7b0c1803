// Package keys implements the secp256k1 key and signature value types the
// rest of the library is built on.
//
// Key formats:
//   - Private keys: WIF (Wallet Import Format) or raw 32 bytes
//   - Public keys: compressed 33-byte (0x02/0x03 prefix + x-coordinate) or
//     uncompressed 65-byte (0x04 prefix + x + y) encodings
//   - Signatures: DER or fixed-width compact (64/65 bytes)
//
// All types are immutable values; every operation reads its inputs and
// allocates fresh outputs, so concurrent use needs no coordination. The only
// external capability is the entropy source passed to FromRandom, which is
// an io.Reader precisely so tests can substitute a deterministic one.
package keys

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/suffix-labs/bsv-primitives/pkg/hash"
)

// PrivateKey is a 32-byte scalar in the secp256k1 scalar field.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// PrivateKeyFromBytes creates a private key from raw bytes. The bytes must
// be exactly 32 and form a scalar in [1, N-1].
func PrivateKeyFromBytes(keyBytes []byte) (*PrivateKey, error) {
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("%w: must be 32 bytes, got %d", ErrInvalidPrivateKey, len(keyBytes))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(keyBytes); overflow {
		return nil, fmt.Errorf("%w: not below the curve order", ErrInvalidPrivateKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}

	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PrivateKeyFromScalar creates a private key from a non-zero scalar.
func PrivateKeyFromScalar(scalar *secp256k1.ModNScalar) (*PrivateKey, error) {
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}
	var s secp256k1.ModNScalar
	s.Set(scalar)
	return &PrivateKey{key: secp256k1.NewPrivateKey(&s)}, nil
}

// RandomPrivateKey draws a fresh key from the supplied entropy source.
func RandomPrivateKey(rand io.Reader) (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return &PrivateKey{key: key}, nil
}

// Bytes returns the raw 32-byte private key.
func (pk *PrivateKey) Bytes() []byte {
	return pk.key.Serialize()
}

// Scalar returns a copy of the private scalar for engine-level arithmetic.
func (pk *PrivateKey) Scalar() *secp256k1.ModNScalar {
	var s secp256k1.ModNScalar
	s.Set(&pk.key.Key)
	return &s
}

// PublicKey derives the public key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: pk.key.PubKey()}
}

// WIF version bytes.
const (
	wifMainnet = 0x80
	wifTestnet = 0xef
)

// PrivateKeyFromWIF parses a WIF-encoded private key.
// WIF format: version_byte || private_key (32 bytes) || [compression_flag] || checksum (4 bytes)
func PrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	decoded := base58.Decode(wif)
	if len(decoded) != 37 && len(decoded) != 38 {
		return nil, fmt.Errorf("%w: bad length %d", ErrInvalidWIF, len(decoded))
	}

	version := decoded[0]
	if version != wifMainnet && version != wifTestnet {
		return nil, fmt.Errorf("%w: bad version byte 0x%02x", ErrInvalidWIF, version)
	}

	checksumOffset := len(decoded) - 4
	payload := decoded[:checksumOffset]
	want := hash.Checksum(payload)
	got := decoded[checksumOffset:]
	for i := 0; i < 4; i++ {
		if got[i] != want[i] {
			return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidWIF)
		}
	}

	return PrivateKeyFromBytes(payload[1:33])
}

// ToWIF encodes the private key to WIF format.
func (pk *PrivateKey) ToWIF(compressed, testnet bool) string {
	version := byte(wifMainnet)
	if testnet {
		version = wifTestnet
	}

	payload := make([]byte, 0, 38)
	payload = append(payload, version)
	payload = append(payload, pk.Bytes()...)
	if compressed {
		payload = append(payload, 0x01)
	}

	checksum := hash.Checksum(payload)
	payload = append(payload, checksum[:]...)

	return base58.Encode(payload)
}
