// This file contains the game-info decoder: a single fixed-layout record
// parsed at exact byte offsets. Padding bytes are skipped, never
// interpreted; field positions are load-bearing.

package repparser

import (
	"encoding/binary"

	"github.com/scrparse/screplay/rep"
	"github.com/scrparse/screplay/rep/repcore"
)

const (
	gameInfoPlayerSlotsOffset = 161
	gameInfoPlayerSlotSize    = 36
	gameInfoPlayerSlotCount   = 12
	gameInfoColorsOffset      = gameInfoPlayerSlotsOffset + gameInfoPlayerSlotSize*gameInfoPlayerSlotCount // 593
	gameInfoColorCount        = 8
	gameInfoRecordSize        = gameInfoColorsOffset + 4*gameInfoColorCount // 625
)

// parseGameInfo parses the decompressed game-info section payload at its
// documented absolute offsets.
func parseGameInfo(data []byte) (*rep.GameInfo, error) {
	if len(data) < gameInfoRecordSize {
		return nil, newInvalidDataError("game-info payload shorter than the fixed record layout")
	}

	title, rawTitle := repcore.DecodeCString(data[24 : 24+28])
	host, rawHost := repcore.DecodeCString(data[72 : 72+24])
	mapName, rawMap := repcore.DecodeCString(data[97 : 97+26])

	gi := &rep.GameInfo{
		Engine:          repcore.EngineByID(int8(data[0])),
		Frames:          repcore.Frame(binary.LittleEndian.Uint32(data[1:5])),
		StartTime:       startTimeFromUnix(binary.LittleEndian.Uint32(data[8:12])),
		Title:           title,
		RawTitle:        rawTitle,
		MapWidth:        binary.LittleEndian.Uint16(data[52:54]),
		MapHeight:       binary.LittleEndian.Uint16(data[54:56]),
		AvailSlotsCount: data[57],
		Speed:           data[58],
		GameType:        binary.LittleEndian.Uint16(data[60:62]),
		SubType:         binary.LittleEndian.Uint16(data[62:64]),
		Host:            host,
		RawHost:         rawHost,
		Map:             mapName,
		RawMap:          rawMap,
	}

	for i := 0; i < gameInfoPlayerSlotCount; i++ {
		off := gameInfoPlayerSlotsOffset + i*gameInfoPlayerSlotSize
		gi.Players[i] = parsePlayerSlot(data[off : off+gameInfoPlayerSlotSize])
	}

	for i := 0; i < gameInfoColorCount; i++ {
		off := gameInfoColorsOffset + i*4
		gi.Colors[i] = repcore.ColorByID(binary.LittleEndian.Uint32(data[off : off+4]))
	}

	return gi, nil
}

// parsePlayerSlot parses one 36-byte player slot record.
func parsePlayerSlot(data []byte) *rep.PlayerSlot {
	name, rawName := repcore.DecodeCString(data[11:36])
	return &rep.PlayerSlot{
		SlotID:     binary.LittleEndian.Uint16(data[0:2]),
		ID:         data[4],
		PlayerType: data[8],
		Race:       repcore.RaceByID(data[9]),
		Team:       data[10],
		Name:       name,
		RawName:    rawName,
	}
}
