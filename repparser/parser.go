// Package repparser implements the top-level replay parsing pipeline:
// header, game-info, the unknown skipped section, and the frame/command
// stream, assembled into a rep.ParsedReplay.
package repparser

import (
	"fmt"
	"log"
	"os"

	"github.com/scrparse/screplay/rep"
)

// Parse decodes a raw replay byte buffer into a ParsedReplay.
//
// Header and game-info errors are fatal. Frame/command iteration errors
// are recovered locally inside decodeFrames; Parse itself never sees them.
// As a last-resort safety net against implementation bugs elsewhere in the
// pipeline, Parse also recovers from any panic and reports it as an
// ErrInvalidData error, logging the details for diagnosis.
func Parse(data []byte) (result *rep.ParsedReplay, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("repparser: recovered from panic while parsing: %v", p)
			result = nil
			err = newInvalidDataError(fmt.Sprintf("internal parser error: %v", p))
		}
	}()

	return parse(data)
}

// ParseFile reads the file at path and parses it.
func ParseFile(path string) (*rep.ParsedReplay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func parse(data []byte) (*rep.ParsedReplay, error) {
	r := newBytesReader(data)

	header, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	gameInfoPayload, err := decodeSingleChunkSection(r, gameInfoRecordSize)
	if err != nil {
		return nil, err
	}
	gameInfo, err := parseGameInfo(gameInfoPayload)
	if err != nil {
		return nil, err
	}

	if err := skipSection(r); err != nil {
		return nil, err
	}

	framesPayload, err := decodeSection(r, 0)
	if err != nil {
		return nil, err
	}
	frames := decodeFrames(framesPayload)

	return &rep.ParsedReplay{
		Header:   header,
		GameInfo: gameInfo,
		Frames:   frames,
	}, nil
}
