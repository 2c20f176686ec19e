// Package encoding turns customer book exports of unknown provenance into
// UTF-8. The files come from whatever spreadsheet tool the distributor's
// office had at the time, so the charset has to be sniffed.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffSize is how many bytes are peeked for BOM and charset detection.
const sniffSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that decodes its content to UTF-8.
//
// A BOM wins when present (the UTF-8 BOM is stripped, UTF-16 is decoded).
// Content that already validates as UTF-8 passes through untouched.
// Otherwise the charset is guessed heuristically, falling back to
// Windows-1252, which is what old spreadsheet exports usually are.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if r, ok := bomReader(br, buf); ok {
		return r, nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	return charsetReader(br, buf), nil
}

// bomReader handles inputs that declare their encoding with a byte order
// mark.
func bomReader(br *bufio.Reader, buf []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, true
	case bytes.HasPrefix(buf, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(buf, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

// charsetReader guesses the charset of non-UTF-8 content.
func charsetReader(br *bufio.Reader, buf []byte) io.Reader {
	detector := chardet.NewTextDetector()

	result, err := detector.DetectBest(buf)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return br
		case "ISO-8859-9":
			return transform.NewReader(br, charmap.ISO8859_9.NewDecoder())
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder())
}
