package repcmd

// lengthUnknown marks a table slot whose opcode falls back to the
// catch-all policy (consume one byte if any remains, else zero).
const lengthUnknown = -1

// payloadLengths is a dense array, indexed by opcode, of the number of
// payload bytes that follow a command's command_type byte. This models
// the format knowledge as a lookup instead of a branching dispatch, so
// the command iterator itself stays free of opcode-specific logic.
var payloadLengths = buildPayloadLengths()

func buildPayloadLengths() [256]int {
	var t [256]int
	for i := range t {
		t[i] = lengthUnknown
	}

	zero := []byte{
		0x08, 0x10, 0x11, 0x18, 0x19, 0x1B, 0x1C, 0x1D, 0x27, 0x2A,
		0x2E, 0x31, 0x33, 0x34, 0x36, 0x38, 0x39, 0x3C, 0x54, 0x5A, 0x5B,
	}
	one := []byte{0x0F, 0x20, 0x21, 0x22, 0x30, 0x32, 0x55, 0x57}
	two := []byte{0x29, 0x62}

	for _, op := range zero {
		t[op] = 0
	}
	for _, op := range one {
		t[op] = 1
	}
	for _, op := range two {
		t[op] = 2
	}
	t[TypeIDChat] = 81

	return t
}

// PayloadLength returns the fixed payload length prescribed for opcode,
// and whether the opcode has a fixed length registered in the table. When
// ok is false, the caller must fall back to the catch-all policy: consume
// one byte if any input remains, else zero.
func PayloadLength(opcode byte) (length int, ok bool) {
	n := payloadLengths[opcode]
	if n == lengthUnknown {
		return 0, false
	}
	return n, true
}
