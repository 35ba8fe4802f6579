// This file contains general types shared across the replay model.

package repcore

import "time"

// Frame is the basic time unit in a replay.
// There are approximately ~23.81 frames in a second;
// 1 frame = 0.042 second = 42 ms to be exact.
type Frame uint32

// Milliseconds returns the time equivalent to the frame count in milliseconds.
func (f Frame) Milliseconds() uint32 {
	return uint32(f) * 42
}

// Minutes returns the time equivalent to the frame count in minutes.
func (f Frame) Minutes() float64 {
	return float64(f.Milliseconds()) / 60000
}

// Duration returns the frame count as a time.Duration value.
func (f Frame) Duration() time.Duration {
	return time.Millisecond * time.Duration(f.Milliseconds())
}
