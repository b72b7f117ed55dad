package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilechase/ecs/component"
)

const stickDeadzone = 0.3

// keyboardInput polls WASD, the arrow keys and the first gamepad. Space or
// the gamepad's primary button attacks.
type keyboardInput struct{}

func (keyboardInput) Intent() component.Intent {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var in component.Intent
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.MoveY++
	}
	in.Attacking = ebiten.IsKeyPressed(ebiten.KeySpace)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if lx < -stickDeadzone {
			in.MoveX = -1
		} else if lx > stickDeadzone {
			in.MoveX = 1
		}
		if ly < -stickDeadzone {
			in.MoveY = -1
		} else if ly > stickDeadzone {
			in.MoveY = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			in.Attacking = true
		}
	}
	return in
}
