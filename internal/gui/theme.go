package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/secret-cult/internal/cardart"
	"github.com/appengine-ltd/secret-cult/internal/game"
)

type Theme struct {
	Background   rl.Color
	Panel        rl.Color
	PanelRaised  rl.Color
	Text         rl.Color
	TextDisabled rl.Color
	Shadow       rl.Color
}

var AppTheme = Theme{
	Background:   rgba(cardart.Black),
	Panel:        rgba(cardart.DarkGray),
	PanelRaised:  rl.NewColor(58, 58, 58, 255),
	Text:         rgba(cardart.Gold),
	TextDisabled: rl.NewColor(106, 87, 27, 255),
	Shadow:       rl.NewColor(0, 0, 0, 100),
}

func rgba(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func cardBorder(t game.CardType) rl.Color {
	return rgba(cardart.Border(t))
}

// DrawPanel fills rect and outlines it in gold.
func DrawPanel(rect rl.Rectangle, fill rl.Color) {
	rl.DrawRectangleRec(rect, fill)
	rl.DrawRectangleLinesEx(rect, 2, AppTheme.Text)
}

type buttonState int

const (
	buttonNormal buttonState = iota
	buttonHovered
	buttonDisabled
)

func DrawButton(rect rl.Rectangle, state buttonState, text string) {
	fill, ink := AppTheme.Panel, AppTheme.Text
	switch state {
	case buttonHovered:
		fill = AppTheme.PanelRaised
	case buttonDisabled:
		fill = rl.NewColor(21, 21, 21, 255)
		ink = AppTheme.TextDisabled
	}
	rl.DrawRectangleRounded(rect, 0.1, 4, fill)
	rl.DrawRectangleRoundedLinesEx(rect, 0.1, 4, 2, ink)
	w := measureText(text, typeScale.Small)
	x := int32(rect.X + (rect.Width-float32(w))/2)
	y := int32(rect.Y + (rect.Height-float32(typeScale.Small))/2)
	drawText(text, x, y, typeScale.Small, ink)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, 2, AppTheme.Text)
}
