// Package cardart rasterises the emblem drawn in the corner of every card.
// Emblems are plain images so both front ends and the asset generator can
// share them.
package cardart

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/secret-cult/internal/game"
)

var (
	Gold     = color.RGBA{R: 212, G: 175, B: 55, A: 255}
	Black    = color.RGBA{R: 26, G: 26, B: 26, A: 255}
	DarkGray = color.RGBA{R: 42, G: 42, B: 42, A: 255}
)

// Border is the frame colour of a card type.
func Border(t game.CardType) color.RGBA {
	switch t {
	case game.CardAspect:
		return color.RGBA{R: 139, G: 0, B: 0, A: 255}
	case game.CardFollower:
		return color.RGBA{R: 0, G: 100, B: 0, A: 255}
	case game.CardLocation:
		return color.RGBA{R: 75, G: 0, B: 130, A: 255}
	case game.CardLore:
		return color.RGBA{R: 255, G: 140, B: 0, A: 255}
	case game.CardResource:
		return color.RGBA{R: 30, G: 144, B: 255, A: 255}
	default:
		return Gold
	}
}

// BorderWidth is thicker for the cult card.
func BorderWidth(t game.CardType) float64 {
	if t == game.CardCult {
		return 3
	}
	return 2
}

const MinSize = 8

// Emblem draws the card type's symbol on a transparent square of the given
// size in pixels.
func Emblem(t game.CardType, size int) image.Image {
	if size < MinSize {
		size = MinSize
	}
	dc := gg.NewContext(size, size)
	dc.SetRGBA(0, 0, 0, 0)
	dc.Clear()

	s := float64(size)
	cx, cy := s/2, s/2
	ink := Border(t)

	// Faint halo behind every emblem.
	halo := gg.NewRadialGradient(cx, cy, s*0.05, cx, cy, s*0.5)
	halo.AddColorStop(0, color.RGBA{R: ink.R, G: ink.G, B: ink.B, A: 90})
	halo.AddColorStop(1, color.RGBA{R: ink.R, G: ink.G, B: ink.B, A: 0})
	dc.SetFillStyle(halo)
	dc.DrawCircle(cx, cy, s*0.5)
	dc.Fill()

	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetLineWidth(math.Max(1, s*0.06))

	switch t {
	case game.CardResource:
		drawCoin(dc, cx, cy, s)
	case game.CardLore:
		drawBook(dc, cx, cy, s)
	case game.CardFollower:
		drawFigure(dc, cx, cy, s)
	case game.CardAspect:
		drawEye(dc, cx, cy, s)
	case game.CardLocation:
		drawTemple(dc, cx, cy, s)
	case game.CardCult:
		drawSigil(dc, cx, cy, s)
	default:
		dc.SetColor(Gold)
		dc.DrawCircle(cx, cy, s*0.3)
		dc.Stroke()
	}
	return dc.Image()
}

func drawCoin(dc *gg.Context, cx, cy, s float64) {
	face := gg.NewLinearGradient(cx, cy-s*0.35, cx, cy+s*0.35)
	face.AddColorStop(0, color.RGBA{R: 250, G: 220, B: 110, A: 255})
	face.AddColorStop(1, Gold)
	dc.SetFillStyle(face)
	dc.DrawCircle(cx, cy, s*0.35)
	dc.Fill()
	dc.SetColor(Black)
	dc.DrawCircle(cx, cy, s*0.24)
	dc.Stroke()
}

func drawBook(dc *gg.Context, cx, cy, s float64) {
	w, h := s*0.62, s*0.48
	dc.SetColor(Border(game.CardLore))
	dc.DrawRoundedRectangle(cx-w/2, cy-h/2, w, h, s*0.04)
	dc.Fill()
	dc.SetColor(Black)
	dc.DrawLine(cx, cy-h/2, cx, cy+h/2)
	dc.Stroke()
	dc.SetLineWidth(math.Max(1, s*0.03))
	for i := 1; i <= 3; i++ {
		y := cy - h/2 + h*float64(i)/4
		dc.DrawLine(cx-w*0.4, y, cx-w*0.1, y)
		dc.DrawLine(cx+w*0.1, y, cx+w*0.4, y)
	}
	dc.Stroke()
}

func drawFigure(dc *gg.Context, cx, cy, s float64) {
	dc.SetColor(Border(game.CardFollower))
	dc.DrawCircle(cx, cy-s*0.14, s*0.14)
	dc.Fill()
	dc.DrawEllipticalArc(cx, cy+s*0.32, s*0.28, s*0.3, math.Pi, 2*math.Pi)
	dc.Fill()
	dc.SetColor(Gold)
	dc.DrawCircle(cx, cy-s*0.14, s*0.14)
	dc.Stroke()
}

func drawEye(dc *gg.Context, cx, cy, s float64) {
	dc.SetColor(Gold)
	dc.DrawEllipse(cx, cy, s*0.38, s*0.2)
	dc.Stroke()
	dc.SetColor(Border(game.CardAspect))
	dc.DrawCircle(cx, cy, s*0.13)
	dc.Fill()
	dc.SetColor(Black)
	dc.DrawCircle(cx, cy, s*0.05)
	dc.Fill()
}

func drawTemple(dc *gg.Context, cx, cy, s float64) {
	base := cy + s*0.3
	top := cy - s*0.1
	dc.SetColor(Border(game.CardLocation))
	dc.MoveTo(cx-s*0.38, top)
	dc.LineTo(cx, cy-s*0.36)
	dc.LineTo(cx+s*0.38, top)
	dc.ClosePath()
	dc.Fill()
	dc.SetColor(Gold)
	for i := 0; i < 4; i++ {
		x := cx - s*0.27 + float64(i)*s*0.18
		dc.DrawLine(x, top+s*0.04, x, base)
	}
	dc.Stroke()
	dc.DrawLine(cx-s*0.38, base, cx+s*0.38, base)
	dc.Stroke()
}

func drawSigil(dc *gg.Context, cx, cy, s float64) {
	r := s * 0.36
	dc.SetColor(Gold)
	dc.DrawCircle(cx, cy, r)
	dc.Stroke()
	// Five-pointed star drawn by joining every second vertex.
	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i*2)*2*math.Pi/5
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	dc.Stroke()
}

// FileName is the emblem's file name inside an asset directory.
func FileName(t game.CardType) string {
	return string(t) + ".png"
}

// WriteAll writes one PNG emblem per card type into dir and returns the paths.
func WriteAll(dir string, size int) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(game.AllCardTypes()))
	for _, t := range game.AllCardTypes() {
		path := filepath.Join(dir, FileName(t))
		if err := gg.SavePNG(path, Emblem(t, size)); err != nil {
			return nil, fmt.Errorf("write %s emblem: %w", t, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
