// internal/words/normalize.go
//
// Canonical word form used for every comparison in the game:
// accents stripped, uppercased. Both the dictionary and incoming
// guesses go through Normalize, so "éléphant" and "ELEPHANT" are
// the same word everywhere past this point.

package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize maps raw text to its canonical comparison form:
// diacritics removed, uppercase. Idempotent — normalizing an
// already-canonical word returns it unchanged.
func Normalize(raw string) string {
	out, _, err := transform.String(stripMarks, raw)
	if err != nil {
		// Malformed input; fall back to the raw bytes rather than fail.
		out = raw
	}
	return strings.ToUpper(out)
}
