package rep

import "math"

// DurationMs returns the game duration in milliseconds: frames * 42.
func (r *ParsedReplay) DurationMs() uint32 {
	if r.GameInfo == nil {
		return 0
	}
	return r.GameInfo.Frames.Milliseconds()
}

// DurationMinutes returns the game duration in minutes.
func (r *ParsedReplay) DurationMinutes() float64 {
	return float64(r.DurationMs()) / 60000
}

// PlayerAPM returns the actions-per-minute rate for the given player ID:
// the count of commands attributed to that player divided by the game
// duration in minutes, floored. Returns 0 when the duration is zero.
func (r *ParsedReplay) PlayerAPM(playerID byte) uint32 {
	minutes := r.DurationMinutes()
	if minutes == 0 {
		return 0
	}

	var count uint32
	for _, f := range r.Frames {
		for _, c := range f.Commands {
			if c.PlayerID == playerID {
				count++
			}
		}
	}
	return uint32(math.Floor(float64(count) / minutes))
}
