package script

import "errors"

var (
	// ErrTruncated is returned when the input ends before a declared push
	// length or length field is satisfied.
	ErrTruncated = errors.New("script: truncated script")

	// ErrUnknownOpcode is returned when a leading byte has no assigned
	// opcode.
	ErrUnknownOpcode = errors.New("script: unrecognized opcode")

	// ErrUnbalancedIf is returned for an OP_IF with no matching OP_ENDIF,
	// or a stray OP_ELSE/OP_ENDIF outside any OP_IF block.
	ErrUnbalancedIf = errors.New("script: unbalanced conditional block")
)
