package script

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/suffix-labs/bsv-primitives/pkg/varint"
)

// Decode parses script bytes into a ScriptBit tree. Single-node decoding is
// applied until the cursor is exhausted, with a bracket matcher folding
// OP_IF/OP_ELSE/OP_ENDIF runs into recursive If nodes. Nesting depth is
// unbounded.
func Decode(data []byte) (Script, error) {
	r := bytes.NewReader(data)
	bits, _, err := decodeSequence(r, true)
	if err != nil {
		return nil, err
	}
	return bits, nil
}

// DecodeHex parses a hex-encoded script.
func DecodeHex(scriptHex string) (Script, error) {
	data, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, fmt.Errorf("script: decoding hex: %w", err)
	}
	return Decode(data)
}

// FromCoinbaseBytes wraps a coinbase input payload without interpreting it.
func FromCoinbaseBytes(data []byte) Script {
	return Script{Coinbase{Data: append([]byte(nil), data...)}}
}

// decodeSequence reads nodes until the cursor is exhausted (top level) or a
// branch terminator is met (inside an If). It returns the terminator opcode
// when one ended the sequence.
func decodeSequence(r *bytes.Reader, topLevel bool) (Script, OpCode, error) {
	var bits Script
	for r.Len() > 0 {
		bit, err := decodeBit(r)
		if err != nil {
			return nil, 0, err
		}

		if op, ok := bit.(Op); ok {
			switch op.Code {
			case OP_IF, OP_NOTIF:
				node, err := decodeIf(r, op.Code)
				if err != nil {
					return nil, 0, err
				}
				bits = append(bits, node)
				continue
			case OP_ELSE, OP_ENDIF:
				if topLevel {
					return nil, 0, fmt.Errorf("%w: stray %v", ErrUnbalancedIf, op.Code)
				}
				return bits, op.Code, nil
			}
		}

		bits = append(bits, bit)
	}

	if !topLevel {
		return nil, 0, fmt.Errorf("%w: OP_IF without OP_ENDIF", ErrUnbalancedIf)
	}
	return bits, 0, nil
}

// decodeIf reads the body of a conditional whose opening code has already
// been consumed.
func decodeIf(r *bytes.Reader, code OpCode) (If, error) {
	pass, term, err := decodeSequence(r, false)
	if err != nil {
		return If{}, err
	}
	if term == OP_ENDIF {
		return If{Code: code, Pass: pass}, nil
	}

	// term == OP_ELSE: one alternative branch, then OP_ENDIF.
	fail, term, err := decodeSequence(r, false)
	if err != nil {
		return If{}, err
	}
	if term != OP_ENDIF {
		return If{}, fmt.Errorf("%w: second OP_ELSE in one block", ErrUnbalancedIf)
	}
	if fail == nil {
		// An empty else branch is still an else branch; a nil Fail means
		// no OP_ELSE at all, and the distinction must survive re-encoding.
		fail = Script{}
	}
	return If{Code: code, Pass: pass, Fail: fail}, nil
}

// decodeBit reads exactly one node: a direct push, a PUSHDATA push, or a
// bare opcode.
func decodeBit(r *bytes.Reader) (ScriptBit, error) {
	lead, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: empty cursor", ErrTruncated)
	}

	if lead >= 1 && lead <= varint.MaxDirectPush {
		data, err := readExact(r, int(lead))
		if err != nil {
			return nil, err
		}
		return Push{Data: data}, nil
	}

	op := OpCode(lead)
	switch op {
	case OP_PUSHDATA1, OP_PUSHDATA2, OP_PUSHDATA4:
		length, err := readPushDataLength(r, op)
		if err != nil {
			return nil, err
		}
		data, err := readExact(r, length)
		if err != nil {
			return nil, err
		}
		return PushData{Code: op, Data: data}, nil
	}

	if !assigned(lead) {
		return nil, fmt.Errorf("%w: byte 0x%02x", ErrUnknownOpcode, lead)
	}
	return Op{Code: op}, nil
}

// readPushDataLength reads the little-endian length field whose width the
// PUSHDATA opcode dictates.
func readPushDataLength(r *bytes.Reader, code OpCode) (int, error) {
	width := 1
	switch code {
	case OP_PUSHDATA2:
		width = 2
	case OP_PUSHDATA4:
		width = 4
	}

	field, err := readExact(r, width)
	if err != nil {
		return 0, err
	}
	switch code {
	case OP_PUSHDATA1:
		return int(field[0]), nil
	case OP_PUSHDATA2:
		return int(binary.LittleEndian.Uint16(field)), nil
	default:
		return int(binary.LittleEndian.Uint32(field)), nil
	}
}

// readExact reads n bytes, checking the remaining cursor length first so a
// corrupt PUSHDATA4 field cannot force a giant allocation.
func readExact(r *bytes.Reader, n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, r.Len())
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return data, nil
}

// Bytes encodes the script back to its exact wire form.
func (s Script) Bytes() []byte {
	var buf []byte
	for _, bit := range s {
		buf = appendBit(buf, bit)
	}
	return buf
}

// Hex returns the wire form as a lowercase hex string.
func (s Script) Hex() string {
	return hex.EncodeToString(s.Bytes())
}

// appendBit encodes one node. Push payloads are assumed to fit a direct
// push; NewPush picks the PUSHDATA form for anything longer.
func appendBit(dst []byte, bit ScriptBit) []byte {
	switch b := bit.(type) {
	case Op:
		return append(dst, byte(b.Code))
	case Push:
		dst = append(dst, byte(len(b.Data)))
		return append(dst, b.Data...)
	case PushData:
		dst = append(dst, byte(b.Code))
		switch b.Code {
		case OP_PUSHDATA1:
			dst = append(dst, byte(len(b.Data)))
		case OP_PUSHDATA2:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(len(b.Data)))
		default:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(len(b.Data)))
		}
		return append(dst, b.Data...)
	case If:
		dst = append(dst, byte(b.Code))
		for _, inner := range b.Pass {
			dst = appendBit(dst, inner)
		}
		if b.Fail != nil {
			dst = append(dst, byte(OP_ELSE))
			for _, inner := range b.Fail {
				dst = appendBit(dst, inner)
			}
		}
		return append(dst, byte(OP_ENDIF))
	case Coinbase:
		return append(dst, b.Data...)
	}
	return dst
}

// NewPush builds the minimal push node for a payload: a direct Push up to
// 75 bytes, otherwise the smallest sufficient PUSHDATA form.
func NewPush(data []byte) ScriptBit {
	owned := append([]byte(nil), data...)
	op, ok := varint.PushDataOpcode(uint64(len(data)))
	if !ok {
		return Push{Data: owned}
	}
	return PushData{Code: OpCode(op), Data: owned}
}
