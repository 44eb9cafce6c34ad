package input_test

import (
	"sort"
	"testing"

	"github.com/plus3/roamer/input"
	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		key    string
		action input.Action
		ok     bool
	}{
		{"ArrowUp", input.Up, true},
		{"w", input.Up, true},
		{"W", input.Up, true},
		{"ArrowDown", input.Down, true},
		{"s", input.Down, true},
		{"S", input.Down, true},
		{"ArrowLeft", input.Left, true},
		{"a", input.Left, true},
		{"A", input.Left, true},
		{"ArrowRight", input.Right, true},
		{"d", input.Right, true},
		{"D", input.Right, true},
		{"c", input.Sneak, true},
		{"Shift", input.Run, true},
		{"C", 0, false},
		{"shift", 0, false},
		{"Enter", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, ok := input.Lookup(tt.key)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.action, action)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	keys := input.Keys(input.Up)
	sort.Strings(keys)
	assert.Equal(t, []string{"ArrowUp", "W", "w"}, keys)
	assert.Equal(t, []string{"Shift"}, input.Keys(input.Run))
}

func TestStateDefaultsToReleased(t *testing.T) {
	var state input.State
	for _, action := range input.Actions() {
		assert.False(t, state.Held(action), action.String())
	}
	assert.Equal(t, input.Intent{}, state.Intent())
}

func TestStatePressRelease(t *testing.T) {
	var state input.State

	assert.True(t, state.Apply("w", true))
	assert.True(t, state.Held(input.Up))

	// Release through a different key bound to the same action.
	assert.True(t, state.Apply("ArrowUp", false))
	assert.False(t, state.Held(input.Up))

	state.Apply("Shift", true)
	state.Apply("c", true)
	assert.Equal(t, input.Intent{Sneak: true, Run: true}, state.Intent())

	state.Reset()
	assert.Equal(t, input.Intent{}, state.Intent())
}

func TestStateIgnoresUnknownInput(t *testing.T) {
	var state input.State
	state.Apply("d", true)

	assert.False(t, state.Apply("q", true))
	assert.False(t, state.Apply("C", true))
	state.Set(input.Action(99), true)
	state.Set(input.Action(-1), true)

	assert.Equal(t, input.Intent{Right: true}, state.Intent())
	assert.False(t, state.Held(input.Action(99)))
	assert.Equal(t, "Unknown", input.Action(99).String())
}

func TestNilStateIntent(t *testing.T) {
	var state *input.State
	assert.Equal(t, input.Intent{}, state.Intent())
}
