// This file contains the header decoder: the outer 20-byte envelope.

package repparser

import (
	"time"

	"github.com/scrparse/screplay/rep"
)

// headerVersion is the only replay version this decoder accepts.
const headerVersion = "seRS"

// parseHeader reads the outer envelope. No decompression happens here;
// only Version drives downstream behavior.
func parseHeader(r *bytesReader) (*rep.Header, error) {
	crc, err := r.u32("header.crc")
	if err != nil {
		return nil, err
	}
	chunks, err := r.u32("header.chunks")
	if err != nil {
		return nil, err
	}
	if chunks != 1 {
		return nil, newInvalidDataError("header.chunks must be 1")
	}
	byteCount, err := r.u32("header.bytes")
	if err != nil {
		return nil, err
	}
	if byteCount != 4 {
		return nil, newInvalidDataError("header.bytes must be 4")
	}
	versionBytes, err := r.take(4, "header.replay_version")
	if err != nil {
		return nil, err
	}
	version := string(versionBytes)
	if version != headerVersion {
		return nil, newUnsupportedVersionError(version)
	}
	remaining, err := r.u32("header.remaining_file_size")
	if err != nil {
		return nil, err
	}

	return &rep.Header{
		CRC:               crc,
		Chunks:            chunks,
		Bytes:             byteCount,
		Version:           version,
		RemainingFileSize: remaining,
	}, nil
}

// startTimeFromUnix interprets a u32 as seconds since the POSIX epoch.
func startTimeFromUnix(sec uint32) time.Time {
	return time.Unix(int64(sec), 0).UTC()
}
