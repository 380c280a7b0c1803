package script

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToASM renders the script in compact ASM: opcode mnemonics with pushes as
// bare hex and OP_0 shortened to "0".
func (s Script) ToASM() string {
	return renderSequence(s, false)
}

// ToExtendedASM renders the script in extended ASM, spelling out push
// opcodes and lengths ("OP_PUSH 3 a1b2c3", "OP_PUSHDATA1 76 ...").
func (s Script) ToExtendedASM() string {
	return renderSequence(s, true)
}

func renderSequence(bits []ScriptBit, extended bool) string {
	tokens := make([]string, 0, len(bits))
	for _, bit := range bits {
		if tok := renderBit(bit, extended); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return strings.Join(tokens, " ")
}

func renderBit(bit ScriptBit, extended bool) string {
	switch b := bit.(type) {
	case Op:
		if b.Code == OP_0 && !extended {
			return "0"
		}
		return b.Code.String()
	case Push:
		if extended {
			return fmt.Sprintf("OP_PUSH %d %s", len(b.Data), hex.EncodeToString(b.Data))
		}
		return hex.EncodeToString(b.Data)
	case PushData:
		if extended {
			return fmt.Sprintf("%v %d %s", b.Code, len(b.Data), hex.EncodeToString(b.Data))
		}
		return hex.EncodeToString(b.Data)
	case If:
		tokens := []string{b.Code.String()}
		if pass := renderSequence(b.Pass, extended); pass != "" {
			tokens = append(tokens, pass)
		}
		if b.Fail != nil {
			tokens = append(tokens, OP_ELSE.String())
			if fail := renderSequence(b.Fail, extended); fail != "" {
				tokens = append(tokens, fail)
			}
		}
		tokens = append(tokens, OP_ENDIF.String())
		return strings.Join(tokens, " ")
	case Coinbase:
		return hex.EncodeToString(b.Data)
	}
	return ""
}

// FromASM parses compact ASM back into a script. Tokens naming an opcode
// (including the OP_FALSE/OP_TRUE aliases and bare "0") become Op nodes;
// hex tokens become minimal pushes. Conditional structure is kept flat: the
// OP_IF/OP_ELSE/OP_ENDIF tokens encode to the same bytes either way.
func FromASM(asm string) (Script, error) {
	fields := strings.Fields(asm)
	bits := make(Script, 0, len(fields))
	for _, token := range fields {
		if op, ok := opcodeByName[token]; ok {
			bits = append(bits, Op{Code: op})
			continue
		}
		data, err := hex.DecodeString(token)
		if err != nil {
			return nil, fmt.Errorf("script: token %q is neither opcode nor hex: %w", token, err)
		}
		bits = append(bits, NewPush(data))
	}
	return bits, nil
}
