package keys

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWIF = "L5EZftvrYaSudiozVRzTqLcHLNDoVn7H5HSfM9BAN6tMJX8oTWz6"

func TestPrivateKeyFromBytes(t *testing.T) {
	valid := make([]byte, 32)
	valid[31] = 1
	pk, err := PrivateKeyFromBytes(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, pk.Bytes())

	_, err = PrivateKeyFromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey)

	_, err = PrivateKeyFromBytes(make([]byte, 32))
	assert.ErrorIs(t, err, ErrInvalidPrivateKey, "zero scalar must be rejected")

	order, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	_, err = PrivateKeyFromBytes(order)
	assert.ErrorIs(t, err, ErrInvalidPrivateKey, "curve order must be rejected")
}

func TestWIFRoundTrip(t *testing.T) {
	pk, err := PrivateKeyFromWIF(testWIF)
	require.NoError(t, err)

	// Compressed mainnet key, so re-encoding reproduces the input.
	assert.Equal(t, testWIF, pk.ToWIF(true, false))

	// The other three encodings decode back to the same scalar.
	for _, wif := range []string{
		pk.ToWIF(false, false),
		pk.ToWIF(true, true),
		pk.ToWIF(false, true),
	} {
		decoded, err := PrivateKeyFromWIF(wif)
		require.NoError(t, err, wif)
		assert.Equal(t, pk.Bytes(), decoded.Bytes())
	}
}

func TestWIFRejectsCorruption(t *testing.T) {
	// A flipped character breaks the checksum.
	corrupted := "L5EZftvrYaSudiozVRzTqLcHLNDoVn7H5HSfM9BAN6tMJX8oTWz5"
	_, err := PrivateKeyFromWIF(corrupted)
	assert.ErrorIs(t, err, ErrInvalidWIF)

	_, err = PrivateKeyFromWIF("notawif")
	assert.ErrorIs(t, err, ErrInvalidWIF)

	_, err = PrivateKeyFromWIF("")
	assert.ErrorIs(t, err, ErrInvalidWIF)
}

func TestPublicKeyEncodings(t *testing.T) {
	pk, err := PrivateKeyFromWIF(testWIF)
	require.NoError(t, err)
	pub := pk.PublicKey()

	compressed := pub.SerializeCompressed()
	require.Len(t, compressed, 33)
	assert.Contains(t, []byte{0x02, 0x03}, compressed[0])

	uncompressed := pub.SerializeUncompressed()
	require.Len(t, uncompressed, 65)
	assert.Equal(t, byte(0x04), uncompressed[0])
	assert.Equal(t, compressed[1:33], uncompressed[1:33], "x coordinate must match")

	fromCompressed, err := ParsePublicKey(compressed)
	require.NoError(t, err)
	fromUncompressed, err := ParsePublicKey(uncompressed)
	require.NoError(t, err)
	assert.True(t, fromCompressed.IsEqual(fromUncompressed))

	_, err = ParsePublicKey([]byte{0x02, 0x01})
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

func TestSignatureDERRoundTrip(t *testing.T) {
	cases := []string{
		"3044022075fc517e541bd54769c080b64397e32161c850f6c1b2b67a5c433ae25" +
			"2a81d1d0220733a862e8cfeb1f040967c2370e1add8ad8b2e92856e91d0f766daf17a5bb15b",
		"3045022100fab965a4dd445c990f46689f7acdc6e089128dc2d743457b350032d6" +
			"6336edb7022005f5684cc707b569120ef0442343998c95f6514c751251a91f82b1ec6a92da78",
	}

	for _, derHex := range cases {
		sig, err := SignatureFromDERHex(derHex)
		require.NoError(t, err, derHex)
		assert.Equal(t, derHex, sig.SerializeHex())
	}
}

func TestSignatureDERTrailingSighashByte(t *testing.T) {
	derHex := "304402205ebadc45ae0d5d4d488c8b2a0a9b4dbf664caf2f9e871d18d6d60d1f" +
		"7c0a8e0202202a0b223ef96b72a21a0c4b4a0847cbbf7b4b6b0a49e9e16fae8a1cd1a1c18cd9"
	sig, err := SignatureFromDERHex(derHex + "c3")
	require.NoError(t, err)
	assert.Equal(t, derHex, sig.SerializeHex(), "sighash byte is not part of the signature")
}

func TestSignatureDERRejectsMalformed(t *testing.T) {
	for _, derHex := range []string{
		"",
		"30",
		"30080201010201010000", // trailing bytes inside the sequence
		"310602010102010a",     // wrong sequence tag
		"3006030101020101",     // wrong integer tag
	} {
		_, err := SignatureFromDERHex(derHex)
		assert.ErrorIs(t, err, ErrInvalidDER, derHex)
	}
}

func TestSignatureCompactRoundTrip(t *testing.T) {
	sig, err := SignatureFromDERHex("3045022100fab965a4dd445c990f46689f7acdc6e089" +
		"128dc2d743457b350032d66336edb7022005f5684cc707b569120ef0442343998c95f6514c" +
		"751251a91f82b1ec6a92da78")
	require.NoError(t, err)

	compact := sig.SerializeCompact()
	require.Len(t, compact, 64)
	back, err := SignatureFromCompact(compact)
	require.NoError(t, err)
	assert.Equal(t, sig.SerializeHex(), back.SerializeHex())

	recoverable := sig.SerializeCompactRecoverable(1, true)
	require.Len(t, recoverable, 65)
	assert.Equal(t, byte(27+1+4), recoverable[0])
	back, err = SignatureFromCompact(recoverable)
	require.NoError(t, err)
	assert.Equal(t, sig.SerializeHex(), back.SerializeHex())

	_, err = SignatureFromCompact(make([]byte, 63))
	assert.ErrorIs(t, err, ErrInvalidCompact)
}
