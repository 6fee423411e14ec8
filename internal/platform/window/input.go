package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodge/internal/core"
)

// Bindings maps actions to physical keys. Left and Right are sampled as
// held keys each tick; Pause and Quit fire once per press.
type Bindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Pause []ebiten.Key
	Quit  []ebiten.Key
}

// DefaultBindings returns the arrow keys plus WASD-style letters.
func DefaultBindings() Bindings {
	return Bindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Pause: []ebiten.Key{ebiten.KeyP},
		Quit:  []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ},
	}
}

// KeyState reports key state for one tick.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	AnyJustPressed() bool
}

// Frame builds the input frame for one tick.
func (b Bindings) Frame(keys KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	if anyKey(b.Left, keys.Pressed) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(b.Right, keys.Pressed) {
		frame.Set(core.ActionRight)
	}
	if anyKey(b.Pause, keys.JustPressed) {
		frame.Set(core.ActionPause)
	}
	if anyKey(b.Quit, keys.JustPressed) {
		frame.Set(core.ActionQuit)
	}
	return frame
}

func anyKey(keys []ebiten.Key, test func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}
