package script

import "testing"

// TestOpCodeFromByteTotal checks the conversion is defined for every byte
// value and that the two collapse bands land on their sentinels.
func TestOpCodeFromByteTotal(t *testing.T) {
	for v := 0; v <= 255; v++ {
		b := byte(v)
		got := OpCodeFromByte(b)

		switch {
		case v >= 1 && v <= 75:
			if got != OP_INVALIDOPCODE {
				t.Errorf("byte %d: direct-push length must map to OP_INVALIDOPCODE, got %v", v, got)
			}
		case v >= 187 && v <= 250:
			if got != OP_INVALID_ABOVE {
				t.Errorf("byte %d: unassigned band must map to OP_INVALID_ABOVE, got %v", v, got)
			}
		default:
			if byte(got) != b {
				t.Errorf("byte %d: assigned value must map to itself, got %v", v, got)
			}
		}
	}
}

func TestOpCodeValues(t *testing.T) {
	cases := []struct {
		code OpCode
		b    byte
	}{
		{OP_0, 0},
		{OP_PUSHDATA1, 76},
		{OP_PUSHDATA4, 78},
		{OP_1, 81},
		{OP_16, 96},
		{OP_IF, 99},
		{OP_ENDIF, 104},
		{OP_DUP, 118},
		{OP_HASH160, 169},
		{OP_CHECKSIG, 172},
		{OP_INVALID_ABOVE, 186},
		{OP_INVALIDOPCODE, 255},
	}
	for _, tc := range cases {
		if byte(tc.code) != tc.b {
			t.Errorf("%v = %d, want %d", tc.code, byte(tc.code), tc.b)
		}
	}
}

func TestOpCodeString(t *testing.T) {
	cases := []struct {
		code OpCode
		want string
	}{
		{OP_0, "OP_0"},
		{OP_DUP, "OP_DUP"},
		{OP_CHECKSIG, "OP_CHECKSIG"},
		{OP_INVALID_ABOVE, "OP_INVALID_ABOVE"},
		{OpCode(200), "OP_INVALIDOPCODE"},
	}
	for _, tc := range cases {
		if got := tc.code.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", byte(tc.code), got, tc.want)
		}
	}
}

func TestOpcodeByNameAliases(t *testing.T) {
	cases := []struct {
		name string
		want OpCode
	}{
		{"OP_0", OP_0},
		{"OP_FALSE", OP_0},
		{"0", OP_0},
		{"OP_TRUE", OP_1},
		{"OP_CHECKSIG", OP_CHECKSIG},
	}
	for _, tc := range cases {
		got, ok := opcodeByName[tc.name]
		if !ok || got != tc.want {
			t.Errorf("opcodeByName[%q] = (%v, %v), want %v", tc.name, got, ok, tc.want)
		}
	}
}
