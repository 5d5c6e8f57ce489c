package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// ReadFont returns the raw bytes of a TrueType or OpenType file. Parsing happens
// in text.LoadFont.
func ReadFont(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	return b, nil
}

// DefaultFont is the embedded Go Regular face.
func DefaultFont() []byte { return goregular.TTF }

// FontOrDefault reads path, or returns DefaultFont when path is empty.
func FontOrDefault(path string) ([]byte, error) {
	if path == "" {
		return DefaultFont(), nil
	}
	return ReadFont(path)
}
