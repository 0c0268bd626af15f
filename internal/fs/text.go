package fs

import (
	"bytes"
	"unicode/utf8"
)

// SniffSize is how much of a stream LineReader.LooksBinary inspects.
const SniffSize = 4096

// Encoding is the text encoding announced by a byte-order mark.
type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingUTF8
	EncodingUTF16LE
	EncodingUTF16BE
)

var byteOrderMarks = []struct {
	mark []byte
	enc  Encoding
}{
	{[]byte{0xEF, 0xBB, 0xBF}, EncodingUTF8},
	{[]byte{0xFF, 0xFE}, EncodingUTF16LE},
	{[]byte{0xFE, 0xFF}, EncodingUTF16BE},
}

// SniffEncoding reports the byte-order mark head starts with and its length.
func SniffEncoding(head []byte) (Encoding, int) {
	for _, bom := range byteOrderMarks {
		if bytes.HasPrefix(head, bom.mark) {
			return bom.enc, len(bom.mark)
		}
	}
	return EncodingNone, 0
}

// LooksBinary decides from the first bytes of a file whether a text search
// should skip it. A byte-order mark always means text, so UTF-16 files pass
// despite their NUL bytes. Otherwise any NUL means binary, and so does a
// sample where at least a quarter of the bytes are stray control bytes or
// broken UTF-8. Legacy 8-bit text with the odd accented letter stays text.
func LooksBinary(head []byte) bool {
	if len(head) == 0 {
		return false
	}
	if enc, _ := SniffEncoding(head); enc != EncodingNone {
		return false
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}

	suspicious := 0
	for i := 0; i < len(head); {
		if !utf8.FullRune(head[i:]) {
			// The sample ends inside a multi-byte sequence.
			break
		}
		r, size := utf8.DecodeRune(head[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			suspicious++
		case r < 0x20 && !isTextControl(byte(r)):
			suspicious++
		}
		i += size
	}
	return suspicious*4 >= len(head)
}

func isTextControl(b byte) bool {
	switch b {
	case '\t', '\n', '\r', '\f', '\v', 0x1b:
		return true
	}
	return false
}
