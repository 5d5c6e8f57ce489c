package text

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/opentype"
)

var log = logrus.WithField("component", "text")

// Font is a parsed font file. It is immutable after LoadFont and may be shared by
// any number of rasterizers, including from different goroutines.
type Font struct {
	data   []byte
	parsed *opentype.Font
}

// LoadFont parses TrueType/OpenType bytes. Empty or corrupt data returns a
// *FontLoadError.
func LoadFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, &FontLoadError{Err: ErrEmptyFontData}
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	return &Font{data: data, parsed: parsed}, nil
}

// Bytes returns the raw font file. Callers must not modify it.
func (f *Font) Bytes() []byte { return f.data }

func (f *Font) NumGlyphs() int { return f.parsed.NumGlyphs() }
