// This file contains the type describing the replay's outer envelope.

package rep

// Header models the 20-byte outer envelope of a replay file.
//
// Only Version drives downstream behavior; CRC, Chunks, Bytes and
// RemainingFileSize are surface metadata carried for completeness.
type Header struct {
	// CRC of the header, read but never validated.
	CRC uint32

	// Chunks must be 1.
	Chunks uint32

	// Bytes must be 4 (the width of the version tag).
	Bytes uint32

	// Version is the 4-byte ASCII replay version tag. Valid replays carry
	// the literal "seRS".
	Version string

	// RemainingFileSize is the size, in bytes, of the file past the header.
	RemainingFileSize uint32
}
