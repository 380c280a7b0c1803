// Package bip32 implements hierarchical-deterministic key derivation: a
// tree of extended private keys grown from a single seed.
//
// An extended key couples a private key with 32 bytes of chain code; child
// keys are derived by HMAC-SHA512 over the chain code and either the parent
// public key (normal derivation) or the parent private key (hardened
// derivation, index >= 0x80000000). Nodes are immutable: Derive returns a
// fresh, independently-owned node holding only the parent's 4-byte
// fingerprint, never a reference back to the parent.
//
// The text serialization is the standard Base58Check "xprv" format:
//
//	version (4, 0488ade4) || depth (1) || parent fingerprint (4) ||
//	index (4, big-endian) || chain code (32) || 0x00 || private key (32) ||
//	checksum (4)
package bip32

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/suffix-labs/bsv-primitives/pkg/hash"
	"github.com/suffix-labs/bsv-primitives/pkg/keys"
)

// HardenedKeyStart is the first hardened child index. Hardened children can
// only be derived with the parent's private key.
const HardenedKeyStart uint32 = 0x80000000

// xprvVersion is the mainnet private extended key version prefix.
var xprvVersion = [4]byte{0x04, 0x88, 0xad, 0xe4}

// serializedKeyLen is the payload length before the 4-byte checksum.
const serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 1 + 32

// masterHMACKey keys the seed HMAC, per the BIP32 specification.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedPrivateKey is one node in a derivation tree. Immutable once
// constructed.
type ExtendedPrivateKey struct {
	privateKey        *keys.PrivateKey
	publicKey         *keys.PublicKey
	chainCode         [32]byte
	depth             uint8
	index             uint32
	parentFingerprint [4]byte
}

// FromSeed builds the master node: HMAC-SHA512("Bitcoin seed", seed), left
// half master scalar, right half chain code.
func FromSeed(seed []byte) (*ExtendedPrivateKey, error) {
	sum := hash.HmacSha512(masterHMACKey, seed)

	privateKey, err := keys.PrivateKeyFromBytes(sum[:32])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	node := &ExtendedPrivateKey{
		privateKey: privateKey,
		publicKey:  privateKey.PublicKey(),
	}
	copy(node.chainCode[:], sum[32:])
	return node, nil
}

// FromRandom draws a 64-byte seed from the supplied entropy source and
// proceeds as FromSeed.
func FromRandom(rand io.Reader) (*ExtendedPrivateKey, error) {
	seed := make([]byte, 64)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return FromSeed(seed)
}

// PrivateKey returns the node's private key.
func (k *ExtendedPrivateKey) PrivateKey() *keys.PrivateKey { return k.privateKey }

// PublicKey returns the node's public key.
func (k *ExtendedPrivateKey) PublicKey() *keys.PublicKey { return k.publicKey }

// ChainCode returns the node's 32-byte chain code.
func (k *ExtendedPrivateKey) ChainCode() [32]byte { return k.chainCode }

// Depth returns the node's depth in the tree; the master node is depth 0.
func (k *ExtendedPrivateKey) Depth() uint8 { return k.depth }

// Index returns the child index this node was derived at.
func (k *ExtendedPrivateKey) Index() uint32 { return k.index }

// ParentFingerprint returns the first four bytes of
// HASH160(parent compressed public key); all zeros for the master node.
func (k *ExtendedPrivateKey) ParentFingerprint() [4]byte { return k.parentFingerprint }

// Derive produces the child node at the given index. Indexes at or above
// HardenedKeyStart derive hardened children from the parent private key;
// lower indexes derive from the parent public key.
func (k *ExtendedPrivateKey) Derive(index uint32) (*ExtendedPrivateKey, error) {
	// HMAC message: 0x00 || ser256(parent key) || ser32(index) when
	// hardened, serP(parent pubkey) || ser32(index) otherwise.
	msg := make([]byte, 0, 37)
	if index >= HardenedKeyStart {
		msg = append(msg, 0x00)
		msg = append(msg, k.privateKey.Bytes()...)
	} else {
		msg = append(msg, k.publicKey.SerializeCompressed()...)
	}
	msg = binary.BigEndian.AppendUint32(msg, index)

	sum := hash.HmacSha512(k.chainCode[:], msg)

	var il secp256k1.ModNScalar
	if overflow := il.SetByteSlice(sum[:32]); overflow {
		return nil, fmt.Errorf("%w: IL not below curve order at index %d", ErrDerivation, index)
	}

	// child = (IL + parent) mod n
	childScalar := il.Add(k.privateKey.Scalar())
	childKey, err := keys.PrivateKeyFromScalar(childScalar)
	if err != nil {
		return nil, fmt.Errorf("%w: zero child scalar at index %d", ErrDerivation, index)
	}

	child := &ExtendedPrivateKey{
		privateKey: childKey,
		publicKey:  childKey.PublicKey(),
		depth:      k.depth + 1,
		index:      index,
	}
	copy(child.chainCode[:], sum[32:])
	parentID := k.publicKey.Hash160()
	copy(child.parentFingerprint[:], parentID[:4])
	return child, nil
}

// DeriveFromPath walks a path of the form m(/index['|h])* and returns the
// final node. An apostrophe or "h" suffix marks the segment hardened. The
// bare path "m" returns the node itself.
func (k *ExtendedPrivateKey) DeriveFromPath(path string) (*ExtendedPrivateKey, error) {
	if path != "m" && !strings.HasPrefix(path, "m/") {
		return nil, fmt.Errorf("%w: path must begin with \"m\"", ErrBadPath)
	}

	node := k
	if path == "m" {
		return node, nil
	}
	for _, segment := range strings.Split(path[2:], "/") {
		index, err := parsePathSegment(segment)
		if err != nil {
			return nil, err
		}
		node, err = node.Derive(index)
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// parsePathSegment converts one path element to a child index, applying the
// hardened bit for a trailing apostrophe or "h".
func parsePathSegment(segment string) (uint32, error) {
	hardened := false
	if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
		hardened = true
		segment = segment[:len(segment)-1]
	}

	index, err := strconv.ParseUint(segment, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad segment %q", ErrBadPath, segment)
	}
	if uint32(index) >= HardenedKeyStart {
		return 0, fmt.Errorf("%w: segment %q out of range", ErrBadPath, segment)
	}

	if hardened {
		return uint32(index) + HardenedKeyStart, nil
	}
	return uint32(index), nil
}

// String serializes the node to the Base58Check "xprv" text format.
func (k *ExtendedPrivateKey) String() string {
	payload := make([]byte, 0, serializedKeyLen+4)
	payload = append(payload, xprvVersion[:]...)
	payload = append(payload, k.depth)
	payload = append(payload, k.parentFingerprint[:]...)
	payload = binary.BigEndian.AppendUint32(payload, k.index)
	payload = append(payload, k.chainCode[:]...)
	payload = append(payload, 0x00)
	payload = append(payload, k.privateKey.Bytes()...)

	checksum := hash.Checksum(payload)
	payload = append(payload, checksum[:]...)
	return base58.Encode(payload)
}

// FromString parses the Base58Check "xprv" text format, validating the
// length, version prefix, private-key marker byte and trailing checksum.
func FromString(xprv string) (*ExtendedPrivateKey, error) {
	decoded := base58.Decode(xprv)
	if len(decoded) != serializedKeyLen+4 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyLength, len(decoded))
	}

	payload := decoded[:serializedKeyLen]
	want := hash.Checksum(payload)
	got := decoded[serializedKeyLen:]
	for i := 0; i < 4; i++ {
		if got[i] != want[i] {
			return nil, ErrBadChecksum
		}
	}

	if !bytes.Equal(payload[:4], xprvVersion[:]) {
		return nil, fmt.Errorf("%w: %x", ErrInvalidVersion, payload[:4])
	}
	if payload[45] != 0x00 {
		return nil, fmt.Errorf("%w: marker byte 0x%02x", ErrInvalidKeyData, payload[45])
	}

	privateKey, err := keys.PrivateKeyFromBytes(payload[46:78])
	if err != nil {
		return nil, err
	}

	node := &ExtendedPrivateKey{
		privateKey: privateKey,
		publicKey:  privateKey.PublicKey(),
		depth:      payload[4],
		index:      binary.BigEndian.Uint32(payload[9:13]),
	}
	copy(node.parentFingerprint[:], payload[5:9])
	copy(node.chainCode[:], payload[13:45])
	return node, nil
}
