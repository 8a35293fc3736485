package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModifiedPressedKey is true when key is pressed with a modifier held.
func ModifiedPressedKey(key int32) bool {
	return (shiftDown() || ctrlDown() || altDown()) && rl.IsKeyPressed(key)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}
