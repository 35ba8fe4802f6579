package rep

import "github.com/scrparse/screplay/rep/repcore"

// PlayerSlot represents one of the 12 fixed seats in the game-info record.
type PlayerSlot struct {
	// SlotID is the slot ID.
	SlotID uint16

	// ID of the player. Computer players and empty slots commonly read 255.
	ID byte

	// PlayerType is the raw player/slot type byte (human, computer, open,
	// closed, etc.); not resolved to an enum because the wire values vary
	// across replay versions and only the race byte is specified here.
	PlayerType byte

	// Race of the player.
	Race *repcore.Race

	// Team of the player.
	Team byte

	// Name of the player.
	Name string

	// RawName is the undecoded Name data; differs from Name only when Name
	// contains invalid UTF-8 and was lossily decoded.
	RawName string `json:"-"`
}
