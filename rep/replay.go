// This file contains the ParsedReplay type, the root of the decoded model.

package rep

import "github.com/scrparse/screplay/rep/repcore"

// ParsedReplay is the fully decoded result of a replay parse. It is
// constructed once by the parser in a single forward pass and is never
// mutated afterward.
type ParsedReplay struct {
	// Header is the outer envelope.
	Header *Header

	// GameInfo is the fixed-layout metadata and roster record.
	GameInfo *GameInfo

	// Frames is the decoded command stream, in frame order.
	Frames []*Frame

	// PlayerColors holds the result of a standalone float-RGBA color
	// section decode, when the caller has explicitly requested one via
	// repcore.DecodeFloatColors. nil unless populated by the caller.
	PlayerColors []*repcore.Color `json:"playerColors,omitempty"`
}
