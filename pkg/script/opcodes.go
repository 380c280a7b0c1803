// Package script implements the structured representation and exact binary
// codec for the ledger's scripting bytecode.
//
// A script is an ordered sequence of ScriptBit nodes: bare opcodes, data
// pushes, PUSHDATA pushes, recursive OP_IF/OP_ELSE/OP_ENDIF blocks and raw
// coinbase payloads. The codec round-trips every syntactically valid script
// exactly; ASM rendering is available in compact form (what block explorers
// show) and an extended form that spells out push opcodes and lengths.
//
// Script execution semantics are out of scope: this package models the
// bytecode, it does not run it.
package script

// OpCode names one script operation per byte value.
//
// Conversion between byte values and opcodes is total: every byte value has
// a defined OpCode. The unassigned band 187..=250 collapses to the
// OP_INVALID_ABOVE sentinel, preserving forward compatibility with opcodes
// that are not yet standardized; byte values 1..=75 are direct-push lengths
// rather than operations and normalize to OP_INVALIDOPCODE.
type OpCode byte

const (
	// Constants
	OP_0         OpCode = 0
	OP_PUSHDATA1 OpCode = 76
	OP_PUSHDATA2 OpCode = 77
	OP_PUSHDATA4 OpCode = 78
	OP_1NEGATE   OpCode = 79
	OP_1         OpCode = 81
	OP_2         OpCode = 82
	OP_3         OpCode = 83
	OP_4         OpCode = 84
	OP_5         OpCode = 85
	OP_6         OpCode = 86
	OP_7         OpCode = 87
	OP_8         OpCode = 88
	OP_9         OpCode = 89
	OP_10        OpCode = 90
	OP_11        OpCode = 91
	OP_12        OpCode = 92
	OP_13        OpCode = 93
	OP_14        OpCode = 94
	OP_15        OpCode = 95
	OP_16        OpCode = 96

	// Flow control
	OP_NOP    OpCode = 97
	OP_IF     OpCode = 99
	OP_NOTIF  OpCode = 100
	OP_ELSE   OpCode = 103
	OP_ENDIF  OpCode = 104
	OP_VERIFY OpCode = 105
	OP_RETURN OpCode = 106

	// Stack
	OP_TOALTSTACK   OpCode = 107
	OP_FROMALTSTACK OpCode = 108
	OP_2DROP        OpCode = 109
	OP_2DUP         OpCode = 110
	OP_3DUP         OpCode = 111
	OP_2OVER        OpCode = 112
	OP_2ROT         OpCode = 113
	OP_2SWAP        OpCode = 114
	OP_IFDUP        OpCode = 115
	OP_DEPTH        OpCode = 116
	OP_DROP         OpCode = 117
	OP_DUP          OpCode = 118
	OP_NIP          OpCode = 119
	OP_OVER         OpCode = 120
	OP_PICK         OpCode = 121
	OP_ROLL         OpCode = 122
	OP_ROT          OpCode = 123
	OP_SWAP         OpCode = 124
	OP_TUCK         OpCode = 125

	// Splice
	OP_CAT   OpCode = 126
	OP_SPLIT OpCode = 127
	OP_SIZE  OpCode = 130

	// Bitwise logic
	OP_INVERT      OpCode = 131
	OP_AND         OpCode = 132
	OP_OR          OpCode = 133
	OP_XOR         OpCode = 134
	OP_EQUAL       OpCode = 135
	OP_EQUALVERIFY OpCode = 136

	// Arithmetic
	OP_NUM2BIN            OpCode = 128
	OP_BIN2NUM            OpCode = 129
	OP_1ADD               OpCode = 139
	OP_1SUB               OpCode = 140
	OP_NEGATE             OpCode = 143
	OP_ABS                OpCode = 144
	OP_NOT                OpCode = 145
	OP_0NOTEQUAL          OpCode = 146
	OP_ADD                OpCode = 147
	OP_SUB                OpCode = 148
	OP_MUL                OpCode = 149
	OP_DIV                OpCode = 150
	OP_MOD                OpCode = 151
	OP_LSHIFT             OpCode = 152
	OP_RSHIFT             OpCode = 153
	OP_BOOLAND            OpCode = 154
	OP_BOOLOR             OpCode = 155
	OP_NUMEQUAL           OpCode = 156
	OP_NUMEQUALVERIFY     OpCode = 157
	OP_NUMNOTEQUAL        OpCode = 158
	OP_LESSTHAN           OpCode = 159
	OP_GREATERTHAN        OpCode = 160
	OP_LESSTHANOREQUAL    OpCode = 161
	OP_GREATERTHANOREQUAL OpCode = 162
	OP_MIN                OpCode = 163
	OP_MAX                OpCode = 164
	OP_WITHIN             OpCode = 165

	// Cryptography
	OP_RIPEMD160           OpCode = 166
	OP_SHA1                OpCode = 167
	OP_SHA256              OpCode = 168
	OP_HASH160             OpCode = 169
	OP_HASH256             OpCode = 170
	OP_CODESEPARATOR       OpCode = 171
	OP_CHECKSIG            OpCode = 172
	OP_CHECKSIGVERIFY      OpCode = 173
	OP_CHECKMULTISIG       OpCode = 174
	OP_CHECKMULTISIGVERIFY OpCode = 175

	// Locktime
	OP_CHECKLOCKTIMEVERIFY OpCode = 177
	OP_CHECKSEQUENCEVERIFY OpCode = 178

	// Reserved words
	OP_RESERVED  OpCode = 80
	OP_VER       OpCode = 98
	OP_VERIF     OpCode = 101
	OP_VERNOTIF  OpCode = 102
	OP_RESERVED1 OpCode = 137
	OP_RESERVED2 OpCode = 138
	OP_NOP1      OpCode = 176
	OP_NOP4      OpCode = 179
	OP_NOP5      OpCode = 180
	OP_NOP6      OpCode = 181
	OP_NOP7      OpCode = 182
	OP_NOP8      OpCode = 183
	OP_NOP9      OpCode = 184
	OP_NOP10     OpCode = 185

	// Disabled words
	OP_2MUL OpCode = 141
	OP_2DIV OpCode = 142

	// Sentinels. OP_INVALID_ABOVE marks the start of the unassigned band;
	// OP_INVALIDOPCODE matches any conversion with no assigned opcode.
	OP_INVALID_ABOVE OpCode = 186
	OP_DATA          OpCode = 251
	OP_SIG           OpCode = 252
	OP_PUBKEYHASH    OpCode = 253
	OP_PUBKEY        OpCode = 254
	OP_INVALIDOPCODE OpCode = 255
)

// opcodeTable is the fixed 256-entry byte-to-opcode lookup. Individually
// assigned values map to themselves; the two sentinel rules cover the rest.
var opcodeTable [256]OpCode

func init() {
	for i := range opcodeTable {
		switch {
		case i >= 1 && i <= 75:
			opcodeTable[i] = OP_INVALIDOPCODE
		case i > int(OP_INVALID_ABOVE) && i <= 250:
			opcodeTable[i] = OP_INVALID_ABOVE
		default:
			opcodeTable[i] = OpCode(i)
		}
	}
}

// OpCodeFromByte converts any byte value to its OpCode. The conversion is
// total and O(1); it never fails.
func OpCodeFromByte(b byte) OpCode {
	return opcodeTable[b]
}

// assigned reports whether the byte value names its own opcode, i.e. the
// table maps it identically.
func assigned(b byte) bool {
	return opcodeTable[b] == OpCode(b)
}

var opcodeNames = map[OpCode]string{
	OP_0: "OP_0", OP_PUSHDATA1: "OP_PUSHDATA1", OP_PUSHDATA2: "OP_PUSHDATA2",
	OP_PUSHDATA4: "OP_PUSHDATA4", OP_1NEGATE: "OP_1NEGATE", OP_RESERVED: "OP_RESERVED",
	OP_1: "OP_1", OP_2: "OP_2", OP_3: "OP_3", OP_4: "OP_4", OP_5: "OP_5",
	OP_6: "OP_6", OP_7: "OP_7", OP_8: "OP_8", OP_9: "OP_9", OP_10: "OP_10",
	OP_11: "OP_11", OP_12: "OP_12", OP_13: "OP_13", OP_14: "OP_14", OP_15: "OP_15",
	OP_16: "OP_16", OP_NOP: "OP_NOP", OP_VER: "OP_VER", OP_IF: "OP_IF",
	OP_NOTIF: "OP_NOTIF", OP_VERIF: "OP_VERIF", OP_VERNOTIF: "OP_VERNOTIF",
	OP_ELSE: "OP_ELSE", OP_ENDIF: "OP_ENDIF", OP_VERIFY: "OP_VERIFY",
	OP_RETURN: "OP_RETURN", OP_TOALTSTACK: "OP_TOALTSTACK",
	OP_FROMALTSTACK: "OP_FROMALTSTACK", OP_2DROP: "OP_2DROP", OP_2DUP: "OP_2DUP",
	OP_3DUP: "OP_3DUP", OP_2OVER: "OP_2OVER", OP_2ROT: "OP_2ROT",
	OP_2SWAP: "OP_2SWAP", OP_IFDUP: "OP_IFDUP", OP_DEPTH: "OP_DEPTH",
	OP_DROP: "OP_DROP", OP_DUP: "OP_DUP", OP_NIP: "OP_NIP", OP_OVER: "OP_OVER",
	OP_PICK: "OP_PICK", OP_ROLL: "OP_ROLL", OP_ROT: "OP_ROT", OP_SWAP: "OP_SWAP",
	OP_TUCK: "OP_TUCK", OP_CAT: "OP_CAT", OP_SPLIT: "OP_SPLIT",
	OP_NUM2BIN: "OP_NUM2BIN", OP_BIN2NUM: "OP_BIN2NUM", OP_SIZE: "OP_SIZE",
	OP_INVERT: "OP_INVERT", OP_AND: "OP_AND", OP_OR: "OP_OR", OP_XOR: "OP_XOR",
	OP_EQUAL: "OP_EQUAL", OP_EQUALVERIFY: "OP_EQUALVERIFY",
	OP_RESERVED1: "OP_RESERVED1", OP_RESERVED2: "OP_RESERVED2",
	OP_1ADD: "OP_1ADD", OP_1SUB: "OP_1SUB", OP_2MUL: "OP_2MUL", OP_2DIV: "OP_2DIV",
	OP_NEGATE: "OP_NEGATE", OP_ABS: "OP_ABS", OP_NOT: "OP_NOT",
	OP_0NOTEQUAL: "OP_0NOTEQUAL", OP_ADD: "OP_ADD", OP_SUB: "OP_SUB",
	OP_MUL: "OP_MUL", OP_DIV: "OP_DIV", OP_MOD: "OP_MOD", OP_LSHIFT: "OP_LSHIFT",
	OP_RSHIFT: "OP_RSHIFT", OP_BOOLAND: "OP_BOOLAND", OP_BOOLOR: "OP_BOOLOR",
	OP_NUMEQUAL: "OP_NUMEQUAL", OP_NUMEQUALVERIFY: "OP_NUMEQUALVERIFY",
	OP_NUMNOTEQUAL: "OP_NUMNOTEQUAL", OP_LESSTHAN: "OP_LESSTHAN",
	OP_GREATERTHAN: "OP_GREATERTHAN", OP_LESSTHANOREQUAL: "OP_LESSTHANOREQUAL",
	OP_GREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL", OP_MIN: "OP_MIN",
	OP_MAX: "OP_MAX", OP_WITHIN: "OP_WITHIN", OP_RIPEMD160: "OP_RIPEMD160",
	OP_SHA1: "OP_SHA1", OP_SHA256: "OP_SHA256", OP_HASH160: "OP_HASH160",
	OP_HASH256: "OP_HASH256", OP_CODESEPARATOR: "OP_CODESEPARATOR",
	OP_CHECKSIG: "OP_CHECKSIG", OP_CHECKSIGVERIFY: "OP_CHECKSIGVERIFY",
	OP_CHECKMULTISIG: "OP_CHECKMULTISIG",
	OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY", OP_NOP1: "OP_NOP1",
	OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
	OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY", OP_NOP4: "OP_NOP4",
	OP_NOP5: "OP_NOP5", OP_NOP6: "OP_NOP6", OP_NOP7: "OP_NOP7", OP_NOP8: "OP_NOP8",
	OP_NOP9: "OP_NOP9", OP_NOP10: "OP_NOP10", OP_INVALID_ABOVE: "OP_INVALID_ABOVE",
	OP_DATA: "OP_DATA", OP_SIG: "OP_SIG", OP_PUBKEYHASH: "OP_PUBKEYHASH",
	OP_PUBKEY: "OP_PUBKEY", OP_INVALIDOPCODE: "OP_INVALIDOPCODE",
}

// opcodeByName maps mnemonics back to opcodes for ASM parsing, including
// the historical aliases.
var opcodeByName = func() map[string]OpCode {
	m := make(map[string]OpCode, len(opcodeNames)+3)
	for op, name := range opcodeNames {
		m[name] = op
	}
	m["OP_FALSE"] = OP_0
	m["OP_TRUE"] = OP_1
	m["0"] = OP_0
	return m
}()

// String returns the opcode mnemonic. Values with no assigned mnemonic
// render as the invalid-opcode sentinel.
func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OP_INVALIDOPCODE"
}
