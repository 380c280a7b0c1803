package script

// ScriptBit is one node of a parsed script. The concrete types form a
// closed sum: Op, Push, PushData, If and Coinbase.
type ScriptBit interface {
	scriptBit()
}

// Op is a bare opcode node.
type Op struct {
	Code OpCode
}

// Push is a direct data push: the leading byte is the payload length
// (1..=75), followed by the payload itself.
type Push struct {
	Data []byte
}

// PushData is a push whose length travels in an explicit little-endian
// field after an OP_PUSHDATA1/2/4 opcode.
type PushData struct {
	Code OpCode
	Data []byte
}

// If is a conditional block. Code is OP_IF or OP_NOTIF; Pass holds the
// nodes executed when the branch is taken, Fail (nil when there is no
// OP_ELSE) the alternative. The OP_ELSE and OP_ENDIF bytes are synthesized
// on encode, never stored.
type If struct {
	Code OpCode
	Pass []ScriptBit
	Fail []ScriptBit
}

// Coinbase is an opaque payload that round-trips byte for byte. Coinbase
// input scripts carry arbitrary data that must not be interpreted as
// opcodes.
type Coinbase struct {
	Data []byte
}

func (Op) scriptBit()       {}
func (Push) scriptBit()     {}
func (PushData) scriptBit() {}
func (If) scriptBit()       {}
func (Coinbase) scriptBit() {}

// PushValue extracts the payload of a data-carrying node. ok is false for
// Op and If nodes.
func PushValue(bit ScriptBit) (data []byte, ok bool) {
	switch b := bit.(type) {
	case Push:
		return b.Data, true
	case PushData:
		return b.Data, true
	case Coinbase:
		return b.Data, true
	default:
		return nil, false
	}
}

// Script is an ordered sequence of ScriptBit nodes.
type Script []ScriptBit
