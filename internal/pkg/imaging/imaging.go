// Package imaging covers the two image manipulations the app needs:
// cropping an uploaded avatar to a circle and rasterizing an initials
// icon for the favicon endpoint.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CropToCircle decodes an image and redraws it inside a centered
// circular mask on a transparent square canvas sized to the larger
// dimension. The result is always PNG so the transparency survives.
func CropToCircle(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding avatar image: %w", err)
	}

	bounds := src.Bounds()
	size := bounds.Dx()
	if bounds.Dy() > size {
		size = bounds.Dy()
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	offset := image.Pt((size-bounds.Dx())/2, (size-bounds.Dy())/2)
	mask := &circleMask{center: image.Pt(size/2, size/2), radius: size / 2}

	draw.DrawMask(dst, dst.Bounds(), src, bounds.Min.Sub(offset), mask, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding cropped avatar: %w", err)
	}
	return buf.Bytes(), nil
}

type circleMask struct {
	center image.Point
	radius int
}

func (m *circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.center.X*2, m.center.Y*2)
}

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x - m.center.X)
	dy := float64(y - m.center.Y)
	r := float64(m.radius)
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

const iconSize = 32

// DefaultIconBackground is used when the profile has no stored color.
const DefaultIconBackground = "#3B82F6"

// InitialsIcon renders up to two uppercase initials in white on a solid
// background as a 32x32 PNG, matching the avatar placeholder the UI shows.
func InitialsIcon(initials, background string) ([]byte, error) {
	bg, err := parseHexColor(background)
	if err != nil {
		bg, _ = parseHexColor(DefaultIconBackground)
	}

	// Truncate by runes; a multi-byte initial must not be cut mid-rune.
	runes := []rune(strings.ToUpper(initials))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	text := string(runes)

	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(iconSize) - width) / 2,
		Y: fixed.I((iconSize + face.Ascent - face.Descent) / 2),
	}
	d.DrawString(text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding initials icon: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
