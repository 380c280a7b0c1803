package keys

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Signature is an ECDSA (r, s) scalar pair. It round-trips losslessly
// between the DER encoding used on chain and the fixed-width compact
// encoding used by signed-message schemes.
type Signature struct {
	R secp256k1.ModNScalar
	S secp256k1.ModNScalar
}

// NewSignature builds a signature from its two scalars.
func NewSignature(r, s *secp256k1.ModNScalar) *Signature {
	var sig Signature
	sig.R.Set(r)
	sig.S.Set(s)
	return &sig
}

// SignatureFromDER parses a DER-encoded signature:
//
//	0x30 <len> 0x02 <rlen> <r> 0x02 <slen> <s>
//
// A trailing byte after the DER structure (the sighash flag appended to
// transaction signatures) is tolerated and ignored.
func SignatureFromDER(der []byte) (*Signature, error) {
	if len(der) < 6 || der[0] != 0x30 {
		return nil, fmt.Errorf("%w: missing sequence header", ErrInvalidDER)
	}
	seqLen := int(der[1])
	if seqLen < 4 || len(der) < 2+seqLen {
		return nil, fmt.Errorf("%w: bad sequence length %d", ErrInvalidDER, seqLen)
	}
	body := der[2 : 2+seqLen]

	r, rest, err := parseDERInt(body)
	if err != nil {
		return nil, err
	}
	s, rest, err := parseDERInt(rest)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes inside sequence", ErrInvalidDER, len(rest))
	}

	return NewSignature(r, s), nil
}

// SignatureFromDERHex parses a hex string holding a DER signature.
func SignatureFromDERHex(derHex string) (*Signature, error) {
	der, err := hex.DecodeString(derHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDER, err)
	}
	return SignatureFromDER(der)
}

// parseDERInt reads one 0x02-tagged integer and returns the remainder.
func parseDERInt(b []byte) (*secp256k1.ModNScalar, []byte, error) {
	if len(b) < 2 || b[0] != 0x02 {
		return nil, nil, fmt.Errorf("%w: missing integer tag", ErrInvalidDER)
	}
	n := int(b[1])
	if n == 0 || n > 33 || len(b) < 2+n {
		return nil, nil, fmt.Errorf("%w: bad integer length %d", ErrInvalidDER, n)
	}
	val := b[2 : 2+n]
	if n == 33 {
		if val[0] != 0x00 {
			return nil, nil, fmt.Errorf("%w: 33-byte integer without zero pad", ErrInvalidDER)
		}
		val = val[1:]
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(val); overflow {
		return nil, nil, fmt.Errorf("%w: integer exceeds curve order", ErrInvalidDER)
	}
	return &scalar, b[2+n:], nil
}

// Serialize returns the minimal DER encoding of the signature.
func (sig *Signature) Serialize() []byte {
	r := derIntBytes(&sig.R)
	s := derIntBytes(&sig.S)

	out := make([]byte, 0, 6+len(r)+len(s))
	out = append(out, 0x30, byte(4+len(r)+len(s)))
	out = append(out, 0x02, byte(len(r)))
	out = append(out, r...)
	out = append(out, 0x02, byte(len(s)))
	out = append(out, s...)
	return out
}

// SerializeHex returns the DER encoding as a lowercase hex string.
func (sig *Signature) SerializeHex() string {
	return hex.EncodeToString(sig.Serialize())
}

// derIntBytes encodes a scalar as a minimal DER integer body: leading zeros
// stripped, one zero byte prepended when the high bit is set.
func derIntBytes(s *secp256k1.ModNScalar) []byte {
	b := s.Bytes()
	i := 0
	for i < 31 && b[i] == 0 {
		i++
	}
	out := b[i:]
	if out[0]&0x80 != 0 {
		return append([]byte{0x00}, out...)
	}
	// Copy out of the stack array.
	return append([]byte(nil), out...)
}

// SerializeCompact returns the 64-byte r || s encoding.
func (sig *Signature) SerializeCompact() []byte {
	out := make([]byte, 64)
	r := sig.R.Bytes()
	s := sig.S.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// SerializeCompactRecoverable returns the 65-byte encoding with the leading
// recovery header byte: 27 + recoveryCode, plus 4 when the signing key's
// public key is compressed.
func (sig *Signature) SerializeCompactRecoverable(recoveryCode byte, compressed bool) []byte {
	header := 27 + recoveryCode
	if compressed {
		header += 4
	}
	return append([]byte{header}, sig.SerializeCompact()...)
}

// SignatureFromCompact parses a 64-byte r || s encoding, or the 65-byte
// variant with a leading recovery header byte.
func SignatureFromCompact(b []byte) (*Signature, error) {
	switch len(b) {
	case 64:
	case 65:
		b = b[1:]
	default:
		return nil, fmt.Errorf("%w: must be 64 or 65 bytes, got %d", ErrInvalidCompact, len(b))
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(b[:32]); overflow {
		return nil, fmt.Errorf("%w: r exceeds curve order", ErrInvalidCompact)
	}
	if overflow := s.SetByteSlice(b[32:]); overflow {
		return nil, fmt.Errorf("%w: s exceeds curve order", ErrInvalidCompact)
	}
	return NewSignature(&r, &s), nil
}
