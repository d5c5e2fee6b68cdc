package output

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format names an image container for encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPNG, FormatWebP, FormatTGA:
		return Format(name), nil
	default:
		return "", fmt.Errorf("output: unknown format %q (want png, webp or tga)", name)
	}
}

// Extension returns the file extension for the format, without the dot
func (f Format) Extension() string {
	return string(f)
}

// ToImage wraps a row-major RGB byte buffer as an image. The buffer must
// hold exactly width*height*3 bytes.
func ToImage(buffer []byte, width, height int) (*image.NRGBA, error) {
	if len(buffer) != width*height*3 {
		return nil, fmt.Errorf("output: buffer is %d bytes, want %d for %dx%d",
			len(buffer), width*height*3, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = buffer[i*3]
		img.Pix[i*4+1] = buffer[i*3+1]
		img.Pix[i*4+2] = buffer[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img, nil
}

// Encode writes the image to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("output: unknown format %q", format)
	}
}
