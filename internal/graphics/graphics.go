package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 800
)

// Run opens a resizable window titled title and runs the main loop. Each frame it calls update
// (input, regeneration), then clears the screen and calls draw (scene and overlays).
// ESC toggles the terminal; close via the window button.
func Run(title string, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC is used to toggle terminal, not to quit; close via window button
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(28, 28, 32, 255))
		draw()
		rl.EndDrawing()
	}
}
