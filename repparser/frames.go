// This file contains the frame/command decoder: frame blocks are iterated
// greedily, and within each block a dense opcode-length table drives
// command extraction. Failure during iteration is recovered locally so
// truncated or padded trailers don't abort the whole parse.

package repparser

import (
	"github.com/scrparse/screplay/rep"
	"github.com/scrparse/screplay/rep/repcmd"
)

// decodeFrames consumes the frames section payload greedily. A parse
// failure at any point terminates the sequence gracefully, keeping the
// frames decoded so far; this is intentional tolerance for truncated or
// padded trailers, per the frame/command decoder's contract.
func decodeFrames(payload []byte) []*rep.Frame {
	r := newBytesReader(payload)
	var frames []*rep.Frame

	for r.remaining() > 0 {
		number, err := r.u32("frame.frame_number")
		if err != nil {
			break
		}
		blockSize, err := r.u8("frame.block_size")
		if err != nil {
			break
		}
		block, err := r.take(int(blockSize), "frame.block_payload")
		if err != nil {
			break
		}

		frames = append(frames, &rep.Frame{
			Number:   number,
			Commands: decodeCommands(block),
		})
	}

	return frames
}

// decodeCommands iterates a frame block's payload, emitting commands until
// exhausted or a command cannot be decoded.
func decodeCommands(block []byte) []*rep.Command {
	r := newBytesReader(block)
	var cmds []*rep.Command

	for r.remaining() > 0 {
		playerID, err := r.u8("command.player_id")
		if err != nil {
			break
		}
		cmdType, err := r.u8("command.command_type")
		if err != nil {
			break
		}

		length, ok := repcmd.PayloadLength(cmdType)
		if !ok {
			// Catch-all policy: consume one byte if any remains, else none.
			if r.remaining() > 0 {
				length = 1
			} else {
				length = 0
			}
		}

		data, err := r.take(length, "command.data")
		if err != nil {
			break
		}

		cmds = append(cmds, &rep.Command{
			PlayerID: playerID,
			Type:     cmdType,
			Data:     data,
		})
	}

	return cmds
}
