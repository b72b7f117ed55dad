package system

import (
	"github.com/milk9111/tilechase/common"
	"github.com/milk9111/tilechase/ecs"
	"github.com/milk9111/tilechase/ecs/component"
)

// InputSource supplies the player's intent for the current frame. Move
// components are clamped to -1, 0 or 1.
type InputSource interface {
	Intent() component.Intent
}

// InputFunc adapts a function to InputSource.
type InputFunc func() component.Intent

func (f InputFunc) Intent() component.Intent {
	return f()
}

// InputSystem copies the input source into every player's Intent.
type InputSystem struct {
	Source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{Source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var in component.Intent
	if i.Source != nil {
		in = i.Source.Intent()
	}
	in.MoveX = common.Sign(in.MoveX)
	in.MoveY = common.Sign(in.MoveY)

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.IntentComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, intent *component.Intent) {
		*intent = in
	})
}
