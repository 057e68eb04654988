// Package encoding turns bank statement files of unknown charset into
// UTF-8 readers. Banks export CSVs in whatever their backoffice produces:
// UTF-8 with or without BOM, UTF-16, or a legacy Windows codepage.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const peekSize = 4096

// boms maps byte-order marks to their decoders. A nil decoder means the
// BOM is stripped and the rest passes through untouched.
var boms = []struct {
	prefix  []byte
	decoder *encoding.Decoder
}{
	{[]byte{0xEF, 0xBB, 0xBF}, nil},
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()},
}

// charsets maps chardet results to decoders for the codepages bank
// exports actually show up in.
var charsets = map[string]*charmap.Charmap{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-2":   charmap.Windows1250,
	"windows-1250": charmap.Windows1250,
}

// NewUTF8Reader sniffs the charset of r and returns a reader decoding it
// to UTF-8. Valid UTF-8 passes through; otherwise chardet picks a
// codepage, falling back to Windows-1250.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(head, bom.prefix) {
			continue
		}

		if bom.decoder == nil {
			_, _ = br.Discard(len(bom.prefix))
			return br, nil
		}

		return transform.NewReader(br, bom.decoder), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if cm, ok := charsets[result.Charset]; ok {
			return transform.NewReader(br, cm.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1250.NewDecoder()), nil
}
