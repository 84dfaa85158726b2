package textmesh

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned by DecodeString for an encoding name
// it does not recognize.
var ErrUnknownEncoding = errors.New("textmesh: unknown encoding")

// encodings maps the accepted encoding names to their decoders.
var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16":       unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM),
}

// DecodeString converts text in a legacy encoding to a Go string,
// suitable for [Text.SetString]. Names are case-insensitive; "utf-8"
// and the empty name return b unchanged.
//
// Invalid sequences are replaced with U+FFFD, which the font renders
// with its fallback glyph.
func DecodeString(b []byte, name string) (string, error) {
	name = strings.ToLower(name)
	if name == "" || name == "utf-8" || name == "utf8" {
		return string(b), nil
	}
	e, ok := encodings[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
