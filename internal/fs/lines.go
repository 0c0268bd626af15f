package fs

import (
	"bufio"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const lineReaderBufferSize = 64 * 1024

// LineReader yields the lines of a text stream. Bytes pass through as-is
// unless the stream starts with a byte-order mark: a UTF-8 BOM is dropped and
// UTF-16 content is decoded to UTF-8.
type LineReader struct {
	br       *bufio.Reader
	line     []byte
	encoding Encoding
}

// NewLineReader wraps r, sniffing its byte-order mark.
func NewLineReader(r io.Reader) *LineReader {
	br := bufio.NewReaderSize(r, lineReaderBufferSize)
	head, _ := br.Peek(3)
	enc, bomLen := SniffEncoding(head)

	switch enc {
	case EncodingUTF8:
		_, _ = br.Discard(bomLen)
	case EncodingUTF16LE, EncodingUTF16BE:
		endian := unicode.LittleEndian
		if enc == EncodingUTF16BE {
			endian = unicode.BigEndian
		}
		// The decoder consumes the BOM itself.
		decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
		br = bufio.NewReaderSize(transform.NewReader(br, decoder), lineReaderBufferSize)
	}

	return &LineReader{br: br, encoding: enc}
}

// Encoding reports the byte-order mark the stream started with.
func (lr *LineReader) Encoding() Encoding {
	return lr.encoding
}

// LooksBinary peeks at up to SniffSize bytes without consuming them and
// reports whether they look like binary data. Call it before Next.
func (lr *LineReader) LooksBinary() bool {
	if lr.encoding != EncodingNone {
		return false
	}
	head, _ := lr.br.Peek(SniffSize)
	return LooksBinary(head)
}

// Next returns the next line without its terminator ("\n" or "\r\n").
// The slice is only valid until the following call. At the end of the stream
// Next returns io.EOF; a final line without a terminator is returned first.
func (lr *LineReader) Next() ([]byte, error) {
	lr.line = lr.line[:0]
	for {
		chunk, err := lr.br.ReadSlice('\n')
		lr.line = append(lr.line, chunk...)

		switch {
		case err == nil:
			return trimLineEnding(lr.line), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(lr.line) == 0 {
				return nil, io.EOF
			}
			return trimLineEnding(lr.line), nil
		default:
			return nil, err
		}
	}
}

func trimLineEnding(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
