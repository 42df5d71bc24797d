package input

import (
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads ebiten's keyboard and window state. Presses are reported
// before releases within a tick.
type Keyboard struct {
	keys []ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Events must be called from ebiten's Update.
func (k *Keyboard) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if ebiten.IsWindowBeingClosed() {
			if !yield(Event{Kind: Quit}) {
				return
			}
		}

		k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
		for _, key := range k.keys {
			if ev, ok := pressed(key); ok && !yield(ev) {
				return
			}
		}

		k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
		for _, key := range k.keys {
			if ev, ok := released(key); ok && !yield(ev) {
				return
			}
		}
	}
}

func mapKey(key ebiten.Key) Key {
	switch key {
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return KeyRight
	case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
		return KeyJump
	}
	return KeyNone
}

func pressed(key ebiten.Key) (Event, bool) {
	if key == ebiten.KeyEscape {
		return Event{Kind: Quit}, true
	}
	k := mapKey(key)
	if k == KeyNone {
		return Event{}, false
	}
	return Event{Kind: KeyDown, Key: k}, true
}

// released only reports direction keys; letting go of jump does nothing.
func released(key ebiten.Key) (Event, bool) {
	switch k := mapKey(key); k {
	case KeyLeft, KeyRight:
		return Event{Kind: KeyUp, Key: k}, true
	}
	return Event{}, false
}
