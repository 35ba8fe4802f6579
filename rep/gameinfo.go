package rep

import (
	"fmt"
	"time"

	"github.com/scrparse/screplay/rep/repcore"
)

// GameInfo models the single fixed-layout game-info record: metadata, the
// 12 player slots and the 8 player colors. See repparser's gameinfo decoder
// for the exact byte offsets this is parsed from.
type GameInfo struct {
	// Engine used to play the game and save the replay.
	Engine *repcore.Engine

	// Frames is the number of logical game ticks, 42ms each.
	Frames repcore.Frame

	// StartTime is the timestamp when the game started, interpreted as
	// seconds since the POSIX epoch.
	StartTime time.Time

	// Title is the game name / title.
	Title string

	// RawTitle is the undecoded Title data; differs from Title only when
	// Title contains invalid UTF-8 and was lossily decoded.
	RawTitle string `json:"-"`

	// MapWidth and MapHeight are the map dimensions, in tiles.
	MapWidth, MapHeight uint16

	// AvailSlotsCount is the number of available slots.
	AvailSlotsCount byte

	// Speed is the raw game speed byte.
	Speed byte

	// GameType is the raw game type value.
	GameType uint16

	// SubType indicates the size of the "Home" team, e.g. 3 in a 3v5 game.
	SubType uint16

	// Host is the game creator's name.
	Host string

	// RawHost is the undecoded Host data.
	RawHost string `json:"-"`

	// Map is the map's name.
	Map string

	// RawMap is the undecoded Map data.
	RawMap string `json:"-"`

	// Players contains exactly 12 player slots, in replay order.
	Players [12]*PlayerSlot

	// Colors contains exactly 8 player colors, in replay order.
	Colors [8]*repcore.Color
}

// MapSize returns the map size in "widthxheight" format, e.g. "64x64".
func (gi *GameInfo) MapSize() string {
	return fmt.Sprint(gi.MapWidth, "x", gi.MapHeight)
}

// EngineName returns the name of the resolved Engine, or "" when Engine is
// nil. Engine holds the resolved enum rather than the raw engine byte; the
// raw byte is Engine.ID.
func (gi *GameInfo) EngineName() string {
	if gi.Engine == nil {
		return ""
	}
	return gi.Engine.Name
}
