// This file contains the shared fixed-width, null-terminated string decoder
// used for every string field in the replay: game title, host name, map
// name, player names and chat messages.

package repcore

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

const runeError = utf8.RuneError

// DecodeCString decodes a fixed-width, NUL-terminated byte window into an
// owned UTF-8 string: the value is the text up to (but not including) the
// first 0x00 byte, or the whole window if no NUL is present.
//
// If the bytes do not decode as valid UTF-8, they are assumed to be
// EUC-KR (a common encoding for player and map names saved by non-English
// clients) and are transcoded accordingly; any residual invalid sequences
// are dropped. raw is always the unprocessed NUL-trimmed byte window,
// decoded as plain UTF-8 without the EUC-KR fallback, for callers that want
// to know when lossy decoding kicked in.
func DecodeCString(data []byte) (decoded, raw string) {
	trimmed := data
	for i, b := range data {
		if b == 0 {
			trimmed = data[:i]
			break
		}
	}
	raw = string(trimmed)

	if utf8.ValidString(raw) {
		return raw, raw
	}

	dec := korean.EUCKR.NewDecoder()
	s, _, err := transform.String(dec, string(trimmed))
	if err != nil {
		return raw, raw
	}
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.ReplaceAll(s, string(rune(runeError)), "")
	return s, raw
}
