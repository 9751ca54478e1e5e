// Package textenc decodes raw statement bytes into text. Banks export in
// a handful of legacy code pages, so candidate encodings are tried in a
// configured preference order until one decodes without replacement
// characters.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncodings is the preference order used when the config names none.
var DefaultEncodings = []string{"utf-8", "windows-1257", "iso-8859-13", "windows-1252"}

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"windows-1257": charmap.Windows1257,
	"iso-8859-13":  charmap.ISO8859_13,
	"windows-1252": charmap.Windows1252,
}

// Decode tries candidates in order and returns the first decoding that
// introduces no U+FFFD replacement characters. If every candidate produces
// replacements, the first candidate's result is returned as a best effort.
func Decode(raw []byte, candidates []string) (string, error) {
	if len(candidates) == 0 {
		candidates = DefaultEncodings
	}

	fallback := ""
	haveFallback := false
	for _, name := range candidates {
		enc, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return "", fmt.Errorf("unknown encoding %q", name)
		}

		decoded, err := enc.NewDecoder().String(string(raw))
		if err != nil {
			continue
		}
		if !strings.ContainsRune(decoded, utf8.RuneError) {
			return decoded, nil
		}
		if !haveFallback {
			fallback = decoded
			haveFallback = true
		}
	}

	if haveFallback {
		return fallback, nil
	}
	return "", fmt.Errorf("no candidate encoding decoded the input")
}
