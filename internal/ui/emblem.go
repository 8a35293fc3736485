package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/appengine-ltd/secret-cult/internal/cardart"
	"github.com/appengine-ltd/secret-cult/internal/game"
)

// renderEmblemANSI draws a card emblem with half-block characters, two pixel
// rows per terminal row.
func renderEmblemANSI(t game.CardType, widthChars int) string {
	widthChars = clampInt(widthChars, cardart.MinSize, 32)
	return imageToANSIHalfBlocks(cardart.Emblem(t, widthChars))
}

func imageToANSIHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return ""
	}

	var out strings.Builder
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			tr, tg, tb, ta := rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < height {
				br, bg, bb, ba = rgba8(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			if ta < 8 && ba < 8 {
				out.WriteByte(' ')
				continue
			}

			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		out.WriteString("\x1b[0m\n")
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func rgba8(c color.Color) (r, g, b, a uint8) {
	r16, g16, b16, a16 := c.RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func clampInt(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
