package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/gogpu/gg"

	"github.com/soocke/contour-annotator-go/domain/annotation"
)

// Style controls how contours are stroked.
type Style struct {
	Color color.Color
	Width float64
}

// DefaultStyle is a 2px green outline.
var DefaultStyle = Style{Color: color.RGBA{0, 255, 0, 255}, Width: 2}

// Render composes a frame: a fresh copy of src with every contour stroked as a
// closed polygon (last point joined back to the first). src is not modified.
// A contour holding a single point is drawn as a dot.
func Render(src image.Image, contours []annotation.Contour, style Style) (image.Image, error) {
	if src == nil {
		return nil, nil
	}
	if len(contours) == 0 {
		return Snapshot(src), nil
	}
	if style.Color == nil {
		style.Color = DefaultStyle.Color
	}
	if style.Width <= 0 {
		style.Width = DefaultStyle.Width
	}
	dc := gg.NewContextForImage(src)
	defer dc.Close()
	dc.SetColor(style.Color)
	dc.SetLineWidth(style.Width)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, c := range contours {
		switch len(c) {
		case 0:
			continue
		case 1:
			dc.DrawCircle(float64(c[0].X), float64(c[0].Y), style.Width/2)
			if err := dc.Fill(); err != nil {
				return nil, err
			}
			continue
		}
		dc.MoveTo(float64(c[0].X), float64(c[0].Y))
		for _, p := range c[1:] {
			dc.LineTo(float64(p.X), float64(p.Y))
		}
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return nil, err
		}
	}
	return dc.Image(), nil
}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
