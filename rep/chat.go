package rep

import (
	"fmt"
	"strings"

	"github.com/scrparse/screplay/rep/repcmd"
	"github.com/scrparse/screplay/rep/repcore"
)

// ChatMessage is a reconstructed in-game chat line.
type ChatMessage struct {
	// SenderID is the data[0] byte of the source chat command.
	SenderID byte

	// SenderName is the name of the PlayerSlot whose SlotID matches
	// SenderID, or "Player {SenderID}" if no slot matches.
	SenderName string

	// Message is the trimmed, NUL-terminated, UTF-8 lossily-decoded text.
	Message string

	// FrameNumber is the frame the chat command was recorded in.
	FrameNumber uint32
}

// ChatMessages walks all commands in frame order and reconstructs the chat
// transcript, filtering command_type == 0x5C. Messages that are empty after
// trimming are dropped.
func (r *ParsedReplay) ChatMessages() []*ChatMessage {
	var msgs []*ChatMessage
	for _, f := range r.Frames {
		for _, c := range f.Commands {
			if c.Type != repcmd.TypeIDChat || len(c.Data) < 81 {
				continue
			}
			senderID := c.Data[0]
			decoded, _ := repcore.DecodeCString(c.Data[1:81])
			message := strings.TrimSpace(decoded)
			if message == "" {
				continue
			}
			msgs = append(msgs, &ChatMessage{
				SenderID:    senderID,
				SenderName:  r.senderName(senderID),
				Message:     message,
				FrameNumber: f.Number,
			})
		}
	}
	return msgs
}

// senderName resolves a chat command's sender to a player name, widening
// the u8 sender ID to u16 before comparing against PlayerSlot.SlotID.
func (r *ParsedReplay) senderName(senderID byte) string {
	if r.GameInfo != nil {
		want := uint16(senderID)
		for _, p := range r.GameInfo.Players {
			if p != nil && p.SlotID == want {
				return p.Name
			}
		}
	}
	return fmt.Sprintf("Player %d", senderID)
}
