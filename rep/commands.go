package rep

import "github.com/scrparse/screplay/rep/repcmd"

// Command is a single opcode-prefixed entry in a frame's command stream.
type Command struct {
	// PlayerID identifies the issuing player.
	PlayerID byte

	// Type is the raw command_type opcode byte.
	Type byte

	// Data is the command's payload, whose length is a deterministic
	// function of Type (see repcmd.PayloadLength).
	Data []byte `json:"data"`
}

// TypeName returns the command type's human-readable name, or an
// "Unknown 0x.." placeholder for opcodes with no registered name.
func (c *Command) TypeName() string {
	return repcmd.TypeByID(c.Type).Name
}

// Frame is one frame block of the command stream: a frame number and the
// commands decoded from its block payload.
type Frame struct {
	// Number is the frame_number field of the block.
	Number uint32

	// Commands decoded from this frame's block payload.
	Commands []*Command
}
