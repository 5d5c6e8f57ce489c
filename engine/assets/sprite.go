package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// LoadSprite decodes a PNG, BMP or WebP file into packed 0xAARRGGBB pixels,
// row-major with a top-left origin, ready for surface.Blit.
func LoadSprite(path string) (pixels []uint32, h, w int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	pixels, h, w, err = DecodeSprite(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode sprite %q: %w", path, err)
	}
	return pixels, h, w, nil
}

func DecodeSprite(r io.Reader) (pixels []uint32, h, w int, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, 0, 0, err
	}
	nrgba := imageToNRGBA(img)
	w, h = nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	pixels = make([]uint32, w*h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			pixels[y*w+x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	return pixels, h, w, nil
}

// Straight alpha keeps fully transparent texels at alpha 0, which is what the
// blitter skips.
func imageToNRGBA(img image.Image) *image.NRGBA {
	if m, ok := img.(*image.NRGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
