package text

import (
	"errors"
	"fmt"
)

// ErrEmptyFontData is wrapped by FontLoadError when no font bytes were supplied.
var ErrEmptyFontData = errors.New("text: empty font data")

// FontLoadError is returned when font bytes cannot be parsed. Nothing can be
// rendered without a font, so callers treat it as fatal.
type FontLoadError struct {
	Err error
}

func (e *FontLoadError) Error() string { return "text: load font: " + e.Err.Error() }
func (e *FontLoadError) Unwrap() error { return e.Err }

// MissingGlyphError reports a code point the font has no glyph for. The character
// is skipped and layout continues.
type MissingGlyphError struct {
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("text: no glyph for %U %q", e.Rune, e.Rune)
}
