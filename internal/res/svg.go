package res

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterizeSVG renders SVG markup into a bitmap sized from its view
// box, scaled by the configured target density.
func (l *Loader) rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	scale := 1.0
	if l.SVGTargetDPI > 0 {
		scale = l.SVGTargetDPI / 72
	}

	width := int(icon.ViewBox.W * scale)
	height := int(icon.ViewBox.H * scale)
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("SVG has an empty view box")
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return rgba, nil
}
