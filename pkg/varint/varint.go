// Package varint implements the two variable-length integer wire encodings
// used throughout Bitcoin-style serialization, plus the ledger's value
// compression transform.
//
// The two encodings are independent and must not be confused:
//
//   - CompactSize: the canonical length prefix used by transaction and
//     script serialization. One byte for values up to 252, then a 0xfd/0xfe/0xff
//     marker followed by a 2/4/8-byte little-endian payload.
//   - VarInt: a base-128 continuation encoding (MSB set on every byte except
//     the last) used by the compact UTXO serialization format. Big-endian
//     digit order with a +1 bias on continued bytes so every value has
//     exactly one encoding.
//
// All functions are pure and allocation-minimal; callers own their buffers.
package varint

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// PUSHDATA opcode byte values. The script package names these in its opcode
// table; they are duplicated here so the length rules stay self-contained.
const (
	opPushData1 = 0x4c
	opPushData2 = 0x4d
	opPushData4 = 0x4e

	// MaxDirectPush is the largest payload length encodable as a direct
	// push (the length itself is the opcode byte).
	MaxDirectPush = 0x4b
)

// CompactSizeLen returns the encoded length in bytes of n as a CompactSize.
func CompactSizeLen(n uint64) int {
	switch {
	case n <= 252:
		return 1
	case n <= 0xffff:
		return 3
	case n <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// AppendCompactSize appends the minimal CompactSize encoding of n to dst.
func AppendCompactSize(dst []byte, n uint64) []byte {
	switch {
	case n <= 252:
		return append(dst, byte(n))
	case n <= 0xffff:
		return binary.LittleEndian.AppendUint16(append(dst, 0xfd), uint16(n))
	case n <= 0xffffffff:
		return binary.LittleEndian.AppendUint32(append(dst, 0xfe), uint32(n))
	default:
		return binary.LittleEndian.AppendUint64(append(dst, 0xff), n)
	}
}

// WriteCompactSize writes the minimal CompactSize encoding of n to w.
func WriteCompactSize(w io.Writer, n uint64) error {
	var buf [9]byte
	b := AppendCompactSize(buf[:0], n)
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing compact size: %w", err)
	}
	return nil
}

// ReadCompactSize reads a CompactSize value from r, branching on the marker
// byte. Truncated input surfaces as ErrTruncated.
func ReadCompactSize(r io.Reader) (uint64, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return 0, truncated(err)
	}

	switch first[0] {
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, truncated(err)
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	case 0xfe:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, truncated(err)
		}
		return uint64(binary.LittleEndian.Uint32(buf[:])), nil
	case 0xff:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, truncated(err)
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	default:
		return uint64(first[0]), nil
	}
}

// PushDataOpcode returns the smallest sufficient PUSHDATA opcode byte for a
// push of the given length. ok is false when the length fits a direct push
// (no PUSHDATA opcode needed).
func PushDataOpcode(length uint64) (op byte, ok bool) {
	switch {
	case length <= MaxDirectPush:
		return 0, false
	case length <= 0xff:
		return opPushData1, true
	case length <= 0xffff:
		return opPushData2, true
	default:
		return opPushData4, true
	}
}

// maxVarIntBytes is the longest possible base-128 encoding of a uint64:
// 64 significant bits at 7 bits per byte.
const maxVarIntBytes = (64 + 6) / 7

// ReadVarInt reads a base-128 continuation-encoded integer from r.
//
// Each byte contributes its low 7 bits; a set high bit means another byte
// follows and adds a +1 bias to the accumulator. Overflow is detected by
// checking the accumulator against MaxUint64>>7 before every shift, and the
// read fails if the bit budget is exhausted without a terminating byte.
func ReadVarInt(r io.ByteReader) (uint64, error) {
	var n uint64
	for i := 0; i < maxVarIntBytes; i++ {
		if n > math.MaxUint64>>7 {
			return 0, fmt.Errorf("%w: varint exceeds 64 bits", ErrOverflow)
		}
		b, err := r.ReadByte()
		if err != nil {
			return 0, truncated(err)
		}
		n = n<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return n, nil
		}
		if n == math.MaxUint64 {
			return 0, fmt.Errorf("%w: varint exceeds 64 bits", ErrOverflow)
		}
		n++
	}
	return 0, fmt.Errorf("%w: no terminating byte", ErrOverflow)
}

// AppendVarInt appends the base-128 continuation encoding of n to dst, the
// exact inverse of ReadVarInt.
func AppendVarInt(dst []byte, n uint64) []byte {
	var tmp [maxVarIntBytes]byte
	i := 0
	for {
		b := byte(n & 0x7f)
		if i > 0 {
			b |= 0x80
		}
		tmp[i] = b
		if n <= 0x7f {
			break
		}
		n = n>>7 - 1
		i++
	}
	for ; i >= 0; i-- {
		dst = append(dst, tmp[i])
	}
	return dst
}

// WriteVarInt writes the base-128 continuation encoding of n to w.
func WriteVarInt(w io.Writer, n uint64) error {
	var buf [maxVarIntBytes]byte
	b := AppendVarInt(buf[:0], n)
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing varint: %w", err)
	}
	return nil
}

// truncated maps io-level EOF conditions onto the package's typed error so
// callers see one error for every short read.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
