// This file contains the player-color models: the required 8-entry u32
// block embedded in the game-info record, and the optional standalone
// 12-entry float-RGBA color section.

package repcore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Color describes a named player color.
type Color struct {
	Enum

	// ID as it appears in the game-info color block
	ID uint32

	// RGB is the red, green, blue component of the color, packed as 0xRRGGBB.
	RGB uint32
}

// Colors is an enumeration of the possible colors.
var Colors = []*Color{
	{Enum{"Red"}, 0x00, 0xf40404},
	{Enum{"Blue"}, 0x01, 0x0c48cc},
	{Enum{"Teal"}, 0x02, 0x2cb494},
	{Enum{"Purple"}, 0x03, 0x88409c},
	{Enum{"Orange"}, 0x04, 0xf88c14},
	{Enum{"Brown"}, 0x05, 0x703014},
	{Enum{"White"}, 0x06, 0xcce0d0},
	{Enum{"Yellow"}, 0x07, 0xfcfc38},
	{Enum{"Green"}, 0x08, 0x088008},
	{Enum{"Pale Yellow"}, 0x09, 0xfcfc7c},
	{Enum{"Tan"}, 0x0a, 0xecc4b0},
	{Enum{"Aqua"}, 0x0b, 0x4068d4},
	{Enum{"Pale Green"}, 0x0c, 0x74a47c},
	{Enum{"Blueish Grey"}, 0x0d, 0x9090b8},
	{Enum{"Pale Yellow2"}, 0x0e, 0xfcfc7c},
	{Enum{"Cyan"}, 0x0f, 0x00e4fc},
	{Enum{"Pink"}, 0x10, 0xffc4e4},
	{Enum{"Olive"}, 0x11, 0x787800},
	{Enum{"Lime"}, 0x12, 0xd2f53c},
	{Enum{"Navy"}, 0x13, 0x0000e6},
	{Enum{"Dark Aqua"}, 0x14, 0x4068d4},
	{Enum{"Magenta"}, 0x15, 0xf032e6},
	{Enum{"Grey"}, 0x16, 0x808080},
	{Enum{"Black"}, 0x17, 0x3c3c3c},
}

// ColorByID returns the Color for a given ID from the game-info color block.
// A new Color with Unknown name is returned if one is not found for the
// given ID (preserving the unknown ID).
func ColorByID(ID uint32) *Color {
	if int(ID) < len(Colors) {
		return Colors[ID]
	}
	return &Color{UnknownEnum(ID), ID, 0}
}

func (c *Color) r() byte { return byte(c.RGB >> 16) }
func (c *Color) g() byte { return byte(c.RGB >> 8) }
func (c *Color) b() byte { return byte(c.RGB) }

// DecodeFloatColors parses the optional, standalone player-color section
// layout: 12 consecutive entries of 4 little-endian float32 components
// (R, G, B, A), each in the 0..1 range. Every entry is resolved to the
// first named Color in Colors whose R/G/B bytes equal its rounded R/G/B
// components; entries with no exact match yield a nil slot.
//
// This is never invoked by Parse; it exists because some tools emit a
// separate color section using this layout instead of (or alongside) the
// 8-entry u32 block inside the game-info record.
func DecodeFloatColors(data []byte) ([]*Color, error) {
	const entrySize = 4 * 4 // 4 floats, 4 bytes each
	const entryCount = 12

	if len(data) < entrySize*entryCount {
		return nil, fmt.Errorf("repcore: float color section too short: have %d bytes, need %d", len(data), entrySize*entryCount)
	}

	r := bytes.NewReader(data)
	colors := make([]*Color, entryCount)
	for i := 0; i < entryCount; i++ {
		var raw [4]uint32
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("repcore: reading float color entry %d: %w", i, err)
		}
		red := math.Float32frombits(raw[0])
		green := math.Float32frombits(raw[1])
		blue := math.Float32frombits(raw[2])

		rb := byte(math.Round(float64(red) * 255))
		gb := byte(math.Round(float64(green) * 255))
		bb := byte(math.Round(float64(blue) * 255))

		for _, c := range Colors {
			if c.r() == rb && c.g() == gb && c.b() == bb {
				colors[i] = c
				break
			}
		}
	}
	return colors, nil
}
