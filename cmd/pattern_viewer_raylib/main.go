// cmd/pattern_viewer_raylib/main.go
//
// Отладочный визуализатор паттернов движения: четыре врага, по одному на
// каждый паттерн, и управляемый мышью круг для проверки пересечений.
package main

import (
	"fmt"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/pkg/collision"
	"go-arcade-shooter/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var patternColors = map[defs.MovementPattern]rl.Color{
	defs.PatternSideToSide: rl.Green,
	defs.PatternDownward:   rl.Magenta,
	defs.PatternZigzag:     rl.Orange,
	defs.PatternStationary: rl.SkyBlue,
}

// makeEnemy настраивает врага c параметрами паттерна, как это делает игра.
func makeEnemy(pattern defs.MovementPattern, x float64) *component.Enemy {
	e := &component.Enemy{
		Pattern: pattern,
		Shape:   collision.BoxShape{W: 28, H: 22},
	}
	switch pattern {
	case defs.PatternSideToSide:
		e.MinX = 14
		e.MaxX = screenWidth - 14
		e.Vel = geom.V(120, 0)
		e.Place(geom.V(x, 120))
	case defs.PatternZigzag:
		e.AnchorX = x
		e.WobbleAmp = 60
		e.WobbleFreq = 2.2
		e.TopY = -40
		e.BottomY = screenHeight + 60
		e.Vel = geom.V(0, 70)
		e.Place(geom.V(x, -40))
	case defs.PatternStationary:
		e.Place(geom.V(x, 150))
	default: // downward
		e.TopY = -40
		e.BottomY = screenHeight + 60
		e.Vel = geom.V(0, 90)
		e.Place(geom.V(x, -40))
	}
	return e
}

func main() {
	rl.InitWindow(screenWidth, screenHeight, "Pattern Viewer | Up/Down - Speed, R - Reset")
	rl.SetTargetFPS(60)

	movement := system.NewMovementSystem()
	enemies := []*component.Enemy{
		makeEnemy(defs.PatternSideToSide, 150),
		makeEnemy(defs.PatternDownward, 350),
		makeEnemy(defs.PatternZigzag, 550),
		makeEnemy(defs.PatternStationary, 700),
	}
	speedMult := 1.0
	probe := collision.CircleShape{R: 14}

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())

		if rl.IsKeyDown(rl.KeyUp) {
			speedMult += 0.5 * dt
		}
		if rl.IsKeyDown(rl.KeyDown) {
			speedMult -= 0.5 * dt
			if speedMult < 0.1 {
				speedMult = 0.1
			}
		}
		if rl.IsKeyPressed(rl.KeyR) {
			enemies = []*component.Enemy{
				makeEnemy(defs.PatternSideToSide, 150),
				makeEnemy(defs.PatternDownward, 350),
				makeEnemy(defs.PatternZigzag, 550),
				makeEnemy(defs.PatternStationary, 700),
			}
		}

		movement.Update(dt, enemies, speedMult)

		mouse := rl.GetMousePosition()
		probeCircle := probe.At(geom.V(float64(mouse.X), float64(mouse.Y)))

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 12, 24, 255))

		for _, e := range enemies {
			box := e.Shape.At(e.Pos)
			clr := patternColors[e.Pattern]
			rl.DrawRectangle(
				int32(box.Min().X()), int32(box.Min().Y()),
				int32(box.W), int32(box.H), clr,
			)
			rl.DrawText(string(e.Pattern), int32(box.Min().X()), int32(box.Min().Y())-14, 10, rl.White)

			// Пересечение с пробным кругом и вектор вытеснения.
			if hit, ok := collision.IntersectBoxCircle(box, probeCircle); ok {
				rl.DrawRectangleLines(
					int32(box.Min().X())-2, int32(box.Min().Y())-2,
					int32(box.W)+4, int32(box.H)+4, rl.Red,
				)
				mtv := hit.MTV()
				rl.DrawLine(
					int32(mouse.X), int32(mouse.Y),
					int32(float64(mouse.X)+mtv.X()), int32(float64(mouse.Y)+mtv.Y()),
					rl.Yellow,
				)
			}
		}

		rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), float32(probe.R), rl.White)
		rl.DrawText(fmt.Sprintf("speed x%.2f", speedMult), 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)
		rl.EndDrawing()
	}

	rl.CloseWindow()
}
