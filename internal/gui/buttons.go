package gui

import (
	"github.com/appengine-ltd/secret-cult/internal/game"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type actionButton struct {
	Action  game.Action
	Rect    rl.Rectangle
	Visible bool
}

// actionButtons lays out one button per action down the side panel. Gated
// actions keep their slot while hidden.
func actionButtons(width int32, view game.View) []actionButton {
	x := float32(width - panelWidth + 10)
	actions := game.AllActions()
	out := make([]actionButton, 0, len(actions))
	for i, a := range actions {
		out = append(out, actionButton{
			Action:  a,
			Rect:    rl.NewRectangle(x, float32(80+40*i), panelWidth-20, 30),
			Visible: view.Available(a),
		})
	}
	return out
}

func buttonAt(buttons []actionButton, point rl.Vector2) (game.Action, bool) {
	for _, b := range buttons {
		if b.Visible && rl.CheckCollisionPointRec(point, b.Rect) {
			return b.Action, true
		}
	}
	return "", false
}

func inputRect(width, height int32) rl.Rectangle {
	return rl.NewRectangle(float32(width-panelWidth+10), float32(height-50), panelWidth-20, 30)
}

func logRect(width, height int32) rl.Rectangle {
	return rl.NewRectangle(10, float32(height-100), float32(width-panelWidth-20), 90)
}
