package text

import (
	"unicode/utf8"

	"github.com/hubastard/pixelgrove/engine/colors"
)

type tokenKind int

const (
	tokenGlyph tokenKind = iota
	tokenEscape
)

// token is either a single code point to render or a consumed color escape.
type token struct {
	kind      tokenKind
	r         rune
	color     colors.Color
	isDefault bool
}

// lex splits a line into glyph and escape tokens. An escape is recognized only when
// the 5 bytes at the cursor are a palette token; any other window is plain text.
func lex(line string) []token {
	toks := make([]token, 0, len(line))
	for i := 0; i < len(line); {
		if line[i] == 0x1b && i+colors.EscapeLen <= len(line) {
			if c, def, ok := colors.LookupEscape(line[i : i+colors.EscapeLen]); ok {
				toks = append(toks, token{kind: tokenEscape, color: c, isDefault: def})
				i += colors.EscapeLen
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		toks = append(toks, token{kind: tokenGlyph, r: r})
		i += size
	}
	return toks
}
