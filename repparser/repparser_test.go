package repparser

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"

	"github.com/scrparse/screplay/rep/repcore"
)

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compressing fixture: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zlib writer: %v", err)
	}
	return buf.Bytes()
}

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func putU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

// buildGameInfoPayload assembles a 625-byte game-info record with 12
// player slots (named per playerNames, empty slots for the rest) and 8
// zero colors.
func buildGameInfoPayload(frames, startTimeUnix uint32, playerNames map[int]string) []byte {
	data := make([]byte, gameInfoRecordSize)

	data[0] = 0x01 // engine: Brood War
	binary.LittleEndian.PutUint32(data[1:5], frames)
	binary.LittleEndian.PutUint32(data[8:12], startTimeUnix)
	binary.LittleEndian.PutUint16(data[52:54], 64)
	binary.LittleEndian.PutUint16(data[54:56], 64)
	data[57] = 8

	for i := 0; i < gameInfoPlayerSlotCount; i++ {
		off := gameInfoPlayerSlotsOffset + i*gameInfoPlayerSlotSize
		binary.LittleEndian.PutUint16(data[off:off+2], uint16(i))
		data[off+4] = byte(i)
		data[off+9] = byte(i % 3) // race
		if name, ok := playerNames[i]; ok {
			copy(data[off+11:off+36], name)
		}
	}

	return data
}

// buildReplay assembles a full replay buffer: header, single-chunk
// game-info section, an empty skipped section, and a frames section whose
// payload is the (possibly empty) concatenation of frameChunks.
func buildReplay(t *testing.T, gameInfoChunkBytes []byte, frameChunks [][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer

	// Header
	putU32(&buf, 0)
	putU32(&buf, 1)
	putU32(&buf, 4)
	buf.WriteString("seRS")
	putU32(&buf, 0)

	// Game-info section (single chunk)
	putU32(&buf, 0)
	putU32(&buf, 1)
	putU32(&buf, uint32(len(gameInfoChunkBytes)))
	buf.Write(gameInfoChunkBytes)

	// Skipped section (empty)
	putU32(&buf, 0)
	putU32(&buf, 0)

	// Frames section
	putU32(&buf, 0)
	putU32(&buf, uint32(len(frameChunks)))
	for _, c := range frameChunks {
		putU32(&buf, uint32(len(c)))
		buf.Write(c)
	}

	return buf.Bytes()
}

// S1: minimal valid replay.
func TestParseMinimalReplay(t *testing.T) {
	gi := buildGameInfoPayload(1000, 1700000000, nil)
	giChunk := zlibCompress(t, gi)
	data := buildReplay(t, giChunk, nil)

	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got, want := replay.DurationMs(), uint32(42000); got != want {
		t.Errorf("DurationMs() = %d, want %d", got, want)
	}
	if len(replay.ChatMessages()) != 0 {
		t.Errorf("expected no chat messages, got %d", len(replay.ChatMessages()))
	}
	if apm := replay.PlayerAPM(0); apm != 0 {
		t.Errorf("PlayerAPM(0) = %d, want 0", apm)
	}
	if len(replay.GameInfo.Players) != 12 {
		t.Errorf("len(Players) = %d, want 12", len(replay.GameInfo.Players))
	}
	if len(replay.GameInfo.Colors) != 8 {
		t.Errorf("len(Colors) = %d, want 8", len(replay.GameInfo.Colors))
	}
}

func buildChatCommand(senderID byte, message string) []byte {
	data := make([]byte, 81)
	data[0] = senderID
	copy(data[1:81], message)
	return data
}

func buildFrameBlock(frameNumber uint32, commands ...[]byte) []byte {
	var buf bytes.Buffer
	putU32(&buf, frameNumber)

	var block bytes.Buffer
	for _, c := range commands {
		block.Write(c)
	}
	buf.WriteByte(byte(block.Len()))
	buf.Write(block.Bytes())
	return buf.Bytes()
}

func chatCommand(playerID byte, chatData []byte) []byte {
	return append([]byte{playerID, 0x5c}, chatData...)
}

// S2: single chat message, sender resolved via player slot.
func TestParseSingleChatMessage(t *testing.T) {
	gi := buildGameInfoPayload(100, 1700000000, map[int]string{3: "alice"})
	giChunk := zlibCompress(t, gi)

	frame := buildFrameBlock(100, chatCommand(3, buildChatCommand(3, "hi")))
	frameChunk := zlibCompress(t, frame)

	data := buildReplay(t, giChunk, [][]byte{frameChunk})
	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	msgs := replay.ChatMessages()
	if len(msgs) != 1 {
		t.Fatalf("got %d chat messages, want 1", len(msgs))
	}
	m := msgs[0]
	if m.SenderID != 3 || m.SenderName != "alice" || m.Message != "hi" || m.FrameNumber != 100 {
		t.Errorf("unexpected message: %+v", m)
	}
}

// S3: unknown sender falls back to "Player {id}".
func TestParseChatUnknownSenderFallback(t *testing.T) {
	gi := buildGameInfoPayload(100, 1700000000, nil)
	// Move slot 3 to slot_id 12 so that no slot has slot_id 3.
	off := gameInfoPlayerSlotsOffset + 3*gameInfoPlayerSlotSize
	binary.LittleEndian.PutUint16(gi[off:off+2], 12)
	giChunk := zlibCompress(t, gi)

	frame := buildFrameBlock(100, chatCommand(3, buildChatCommand(3, "hi")))
	frameChunk := zlibCompress(t, frame)

	data := buildReplay(t, giChunk, [][]byte{frameChunk})
	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	msgs := replay.ChatMessages()
	if len(msgs) != 1 || msgs[0].SenderName != "Player 3" {
		t.Fatalf("got %+v, want SenderName \"Player 3\"", msgs)
	}
}

// S4: mixed known opcodes decode to the prescribed lengths.
func TestParseMixedOpcodes(t *testing.T) {
	gi := buildGameInfoPayload(10, 1700000000, nil)
	giChunk := zlibCompress(t, gi)

	block := []byte{
		7, 0x18, // 0 payload
		7, 0x0F, 0xAB, // 1 payload
		7, 0x29, 0x01, 0x02, // 2 payload
	}
	frame := buildFrameBlock(1, block)
	frameChunk := zlibCompress(t, frame)

	data := buildReplay(t, giChunk, [][]byte{frameChunk})
	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(replay.Frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(replay.Frames))
	}
	cmds := replay.Frames[0].Commands
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	wantLens := []int{0, 1, 2}
	for i, c := range cmds {
		if len(c.Data) != wantLens[i] {
			t.Errorf("command %d: len(Data) = %d, want %d", i, len(c.Data), wantLens[i])
		}
	}
}

// S5: unknown opcode catch-all tolerance.
func TestParseUnknownOpcodeCatchAll(t *testing.T) {
	gi := buildGameInfoPayload(10, 1700000000, nil)
	giChunk := zlibCompress(t, gi)

	block := []byte{7, 0xF0, 0xDE, 0xAD}
	frame := buildFrameBlock(1, block)
	frameChunk := zlibCompress(t, frame)

	data := buildReplay(t, giChunk, [][]byte{frameChunk})
	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cmds := replay.Frames[0].Commands
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if cmds[0].Type != 0xF0 || len(cmds[0].Data) != 1 || cmds[0].Data[0] != 0xDE {
		t.Errorf("command 0 = %+v", cmds[0])
	}
	if cmds[1].Type != 0xAD || len(cmds[1].Data) != 0 {
		t.Errorf("command 1 = %+v", cmds[1])
	}
}

// S6: a chunk that isn't valid zlib falls back to raw bytes.
func TestParseRawFallbackDecompression(t *testing.T) {
	gi := buildGameInfoPayload(500, 1700000000, nil)
	// Use the raw, uncompressed payload directly as the chunk bytes.
	data := buildReplay(t, gi, nil)

	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if replay.GameInfo.Frames != 500 {
		t.Errorf("Frames = %d, want 500", replay.GameInfo.Frames)
	}
}

// Boundary: header.chunks != 1 is a fatal InvalidData error.
func TestParseHeaderInvalidChunks(t *testing.T) {
	var buf bytes.Buffer
	putU32(&buf, 0)
	putU32(&buf, 2) // chunks != 1
	putU32(&buf, 4)
	buf.WriteString("seRS")
	putU32(&buf, 0)

	_, err := Parse(buf.Bytes())
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrInvalidData {
		t.Errorf("got %v, want ErrInvalidData", err)
	}
}

// Boundary: an unrecognized version tag is an UnsupportedVersion error.
func TestParseUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	putU32(&buf, 0)
	putU32(&buf, 1)
	putU32(&buf, 4)
	buf.WriteString("foo!")
	putU32(&buf, 0)

	_, err := Parse(buf.Bytes())
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != ErrUnsupportedVersion {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

// Boundary: a chat command with a NUL at offset 1 of the message decodes
// to an empty string and the record is dropped.
func TestChatMessageEmptyAfterNULIsDropped(t *testing.T) {
	gi := buildGameInfoPayload(100, 1700000000, nil)
	giChunk := zlibCompress(t, gi)

	chatData := make([]byte, 81)
	chatData[0] = 3 // sender ID; chatData[1] left as 0x00
	frame := buildFrameBlock(100, chatCommand(3, chatData))
	frameChunk := zlibCompress(t, frame)

	data := buildReplay(t, giChunk, [][]byte{frameChunk})
	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if msgs := replay.ChatMessages(); len(msgs) != 0 {
		t.Fatalf("got %d chat messages, want 0 (empty message dropped): %+v", len(msgs), msgs)
	}
}

// Boundary: an out-of-range race byte yields Race::Unknown(id), not an
// error, preserving the original ID.
func TestRaceByIDUnknown(t *testing.T) {
	race := repcore.RaceByID(7)
	if race.Name != "Unknown 0x7" {
		t.Errorf("RaceByID(7).Name = %q, want %q", race.Name, "Unknown 0x7")
	}
	if race.ID != 7 {
		t.Errorf("RaceByID(7).ID = %d, want 7", race.ID)
	}
}

// Boundary: a truncated final frame block is tolerated; frames decoded so
// far are kept and no error is returned.
func TestParseTruncatedFinalBlock(t *testing.T) {
	gi := buildGameInfoPayload(10, 1700000000, nil)
	giChunk := zlibCompress(t, gi)

	good := buildFrameBlock(1, []byte{7, 0x18})
	var framesPayload bytes.Buffer
	framesPayload.Write(good)
	// A second frame header claiming a block_size that exceeds the
	// remaining bytes.
	putU32(&framesPayload, 2)
	framesPayload.WriteByte(200)
	framesPayload.Write([]byte{1, 2, 3})

	frameChunk := zlibCompress(t, framesPayload.Bytes())
	data := buildReplay(t, giChunk, [][]byte{frameChunk})

	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(replay.Frames) != 1 {
		t.Fatalf("got %d frames, want 1 (partial result kept)", len(replay.Frames))
	}
}
