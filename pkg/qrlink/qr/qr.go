package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	// Logos may be PNG or JPEG.
	_ "image/jpeg"

	qrcode "github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// logoMaxScale caps the logo edge at 20% of the QR symbol edge. Level-H
// error correction tolerates roughly 30% damaged modules; keeping the
// overlay at 20% of the edge leaves the symbol decodable by standard
// readers. Larger logos are clamped, never rendered oversized.
const logoMaxScale = 0.20

// logoPadding is the white margin drawn behind the logo, in pixels.
const logoPadding = 4

// Generator renders QR codes with an optional centered branding logo.
// It holds no mutable state and is safe for unbounded concurrent use.
type Generator struct {
	size int
	logo image.Image
}

// NewGenerator creates a generator producing size x size pixel images.
// logoPath may be empty for plain codes.
func NewGenerator(size int, logoPath string) (*Generator, error) {
	g := &Generator{size: size}
	if logoPath != "" {
		logo, err := loadLogo(logoPath)
		if err != nil {
			return nil, err
		}
		g.logo = logo
	}
	return g, nil
}

// Generate encodes content as a PNG QR image. Error correction is set to
// the highest level so the logo overlay stays within the damage budget.
func (g *Generator) Generate(content string) ([]byte, error) {
	code, err := qrcode.New(content, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	img := code.Image(g.size)
	if g.logo != nil {
		img = overlayLogo(img, g.logo)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func loadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}
	return img, nil
}

// logoBounds computes the rendered logo size, clamped so its longest edge
// never exceeds logoMaxScale of the symbol edge. Logos already inside the
// budget keep their native size.
func logoBounds(qrEdge, logoW, logoH int) (int, int) {
	maxEdge := int(float64(qrEdge) * logoMaxScale)
	longest := logoW
	if logoH > longest {
		longest = logoH
	}
	if longest <= maxEdge {
		return logoW, logoH
	}
	scale := float64(maxEdge) / float64(longest)
	return int(float64(logoW) * scale), int(float64(logoH) * scale)
}

// overlayLogo draws the logo centered on the QR image over a white padding
// box, scaling it down to the clamped bounds.
func overlayLogo(qr image.Image, logo image.Image) image.Image {
	b := qr.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, qr, b.Min, draw.Src)

	qrEdge := b.Dx()
	if b.Dy() < qrEdge {
		qrEdge = b.Dy()
	}
	w, h := logoBounds(qrEdge, logo.Bounds().Dx(), logo.Bounds().Dy())

	x0 := b.Min.X + (b.Dx()-w)/2
	y0 := b.Min.Y + (b.Dy()-h)/2

	bg := image.Rect(x0-logoPadding, y0-logoPadding, x0+w+logoPadding, y0+h+logoPadding).Intersect(b)
	draw.Draw(out, bg, image.White, image.Point{}, draw.Src)

	dst := image.Rect(x0, y0, x0+w, y0+h)
	xdraw.CatmullRom.Scale(out, dst, logo, logo.Bounds(), xdraw.Over, nil)

	return out
}
