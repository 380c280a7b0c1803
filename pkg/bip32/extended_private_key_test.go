package bip32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/bsv-primitives/pkg/hash"
)

// BIP32 test vector 1.
const (
	vector1Seed = "000102030405060708090a0b0c0d0e0f"

	vector1Master = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkV" +
		"vvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	vector1M0h = "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1r" +
		"GL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7"
	vector1M0h1 = "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53" +
		"Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs"

	vector1MasterChainCode = "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"
	vector1MasterKey       = "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
)

func seedFromHex(t *testing.T, s string) []byte {
	t.Helper()
	seed, err := hex.DecodeString(s)
	require.NoError(t, err)
	return seed
}

func TestFromSeedVector1(t *testing.T) {
	master, err := FromSeed(seedFromHex(t, vector1Seed))
	require.NoError(t, err)

	assert.Equal(t, vector1Master, master.String())
	assert.Equal(t, vector1MasterKey, hex.EncodeToString(master.PrivateKey().Bytes()))
	chainCode := master.ChainCode()
	assert.Equal(t, vector1MasterChainCode, hex.EncodeToString(chainCode[:]))
	assert.Equal(t, uint8(0), master.Depth())
	assert.Equal(t, uint32(0), master.Index())
	assert.Equal(t, [4]byte{}, master.ParentFingerprint())
}

func TestDeriveHardenedVector1(t *testing.T) {
	master, err := FromSeed(seedFromHex(t, vector1Seed))
	require.NoError(t, err)

	child, err := master.Derive(HardenedKeyStart)
	require.NoError(t, err)

	assert.Equal(t, vector1M0h, child.String())
	assert.Equal(t, uint8(1), child.Depth())
	assert.Equal(t, HardenedKeyStart, child.Index())

	// The fingerprint commits to the parent, not the child.
	parentID := master.PublicKey().Hash160()
	fingerprint := child.ParentFingerprint()
	assert.Equal(t, parentID[:4], fingerprint[:])
}

func TestDeriveFromPathVector1(t *testing.T) {
	master, err := FromSeed(seedFromHex(t, vector1Seed))
	require.NoError(t, err)

	same, err := master.DeriveFromPath("m")
	require.NoError(t, err)
	assert.Equal(t, master.String(), same.String())

	child, err := master.DeriveFromPath("m/0'")
	require.NoError(t, err)
	assert.Equal(t, vector1M0h, child.String())

	// "h" marks hardened segments just like the apostrophe.
	childH, err := master.DeriveFromPath("m/0h")
	require.NoError(t, err)
	assert.Equal(t, vector1M0h, childH.String())

	grandchild, err := master.DeriveFromPath("m/0'/1")
	require.NoError(t, err)
	assert.Equal(t, vector1M0h1, grandchild.String())
	assert.Equal(t, uint8(2), grandchild.Depth())
	assert.Equal(t, uint32(1), grandchild.Index())
}

func TestDeriveFromPathErrors(t *testing.T) {
	master, err := FromSeed(seedFromHex(t, vector1Seed))
	require.NoError(t, err)

	for _, path := range []string{
		"",
		"n/0",
		"0/1",
		"m/",
		"m/x",
		"m/0''",
		"m/2147483648", // hardened range must use the suffix form
		"m/-1",
	} {
		_, err := master.DeriveFromPath(path)
		assert.ErrorIs(t, err, ErrBadPath, "path %q", path)
	}
}

func TestHardenedAndNormalDiverge(t *testing.T) {
	master, err := FromSeed(seedFromHex(t, vector1Seed))
	require.NoError(t, err)

	normal, err := master.Derive(0)
	require.NoError(t, err)
	hardened, err := master.Derive(HardenedKeyStart)
	require.NoError(t, err)

	assert.NotEqual(t, normal.PrivateKey().Bytes(), hardened.PrivateKey().Bytes())
	assert.NotEqual(t, normal.ChainCode(), hardened.ChainCode())
	assert.Equal(t, normal.ParentFingerprint(), hardened.ParentFingerprint())
}

func TestStringRoundTrip(t *testing.T) {
	master, err := FromSeed(seedFromHex(t, vector1Seed))
	require.NoError(t, err)
	child, err := master.DeriveFromPath("m/0'/1")
	require.NoError(t, err)

	for _, node := range []*ExtendedPrivateKey{master, child} {
		parsed, err := FromString(node.String())
		require.NoError(t, err)
		assert.Equal(t, node.PrivateKey().Bytes(), parsed.PrivateKey().Bytes())
		assert.Equal(t, node.ChainCode(), parsed.ChainCode())
		assert.Equal(t, node.Depth(), parsed.Depth())
		assert.Equal(t, node.Index(), parsed.Index())
		assert.Equal(t, node.ParentFingerprint(), parsed.ParentFingerprint())
		assert.Equal(t, node.String(), parsed.String())
	}
}

func TestFromStringRejectsCorruption(t *testing.T) {
	// Flip one payload byte and re-encode so only the checksum is stale.
	decoded := base58.Decode(vector1Master)
	require.Len(t, decoded, serializedKeyLen+4)
	decoded[20] ^= 0x01
	_, err := FromString(base58.Encode(decoded))
	assert.ErrorIs(t, err, ErrBadChecksum)

	// Wrong version prefix with a freshly valid checksum.
	decoded = base58.Decode(vector1Master)
	decoded[0] = 0x05
	sum := hash.Checksum(decoded[:serializedKeyLen])
	copy(decoded[serializedKeyLen:], sum[:])
	_, err = FromString(base58.Encode(decoded))
	assert.ErrorIs(t, err, ErrInvalidVersion)

	// Non-zero private-key marker with a freshly valid checksum.
	decoded = base58.Decode(vector1Master)
	decoded[45] = 0x02
	sum = hash.Checksum(decoded[:serializedKeyLen])
	copy(decoded[serializedKeyLen:], sum[:])
	_, err = FromString(base58.Encode(decoded))
	assert.ErrorIs(t, err, ErrInvalidKeyData)

	_, err = FromString("xprvTooShort")
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestFromRandom(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, 64)

	fromReader, err := FromRandom(bytes.NewReader(seed))
	require.NoError(t, err)
	fromSeed, err := FromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, fromSeed.String(), fromReader.String())

	// A source that runs dry surfaces as a randomness failure.
	_, err = FromRandom(bytes.NewReader(seed[:10]))
	assert.ErrorIs(t, err, ErrRandomness)
}
