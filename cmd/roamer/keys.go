package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/roamer/input"
)

var specialKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "ArrowUp",
	ebiten.KeyArrowDown:  "ArrowDown",
	ebiten.KeyArrowLeft:  "ArrowLeft",
	ebiten.KeyArrowRight: "ArrowRight",
	ebiten.KeyShift:      "Shift",
	ebiten.KeyShiftLeft:  "Shift",
	ebiten.KeyShiftRight: "Shift",
}

// keyName returns the browser-style name of an ebiten key: letters are
// upper case while Shift is held, both shift keys are "Shift".
func keyName(key ebiten.Key, shift bool) (string, bool) {
	if name, ok := specialKeys[key]; ok {
		return name, true
	}

	name := key.String()
	if len(name) != 1 || name[0] < 'A' || name[0] > 'Z' {
		return "", false
	}
	if !shift {
		name = strings.ToLower(name)
	}
	return name, true
}

// keyTranslator feeds ebiten key transitions into an input.State. A key is
// released under the name it was pressed as, so letting go of Shift first
// cannot leave an action stuck.
type keyTranslator struct {
	pressedAs map[ebiten.Key]string
	pressed   []ebiten.Key
	released  []ebiten.Key
}

func newKeyTranslator() *keyTranslator {
	return &keyTranslator{pressedAs: make(map[ebiten.Key]string)}
}

// Update reads this tick's key transitions from ebiten.
func (t *keyTranslator) Update(state *input.State) {
	t.pressed = inpututil.AppendJustPressedKeys(t.pressed[:0])
	t.released = inpututil.AppendJustReleasedKeys(t.released[:0])
	t.apply(state, t.pressed, t.released, ebiten.IsKeyPressed(ebiten.KeyShift))
}

func (t *keyTranslator) apply(state *input.State, pressed, released []ebiten.Key, shift bool) {
	for _, key := range released {
		name, ok := t.pressedAs[key]
		if !ok {
			continue
		}
		delete(t.pressedAs, key)
		state.Apply(name, false)
	}

	for _, key := range pressed {
		name, ok := keyName(key, shift)
		if !ok {
			continue
		}
		t.pressedAs[key] = name
		state.Apply(name, true)
	}
}

// Reset releases every held key, for when the window loses focus.
func (t *keyTranslator) Reset(state *input.State) {
	clear(t.pressedAs)
	state.Reset()
}
