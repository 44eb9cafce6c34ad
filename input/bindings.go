package input

// bindings maps key identifiers, as reported by a browser-style key event,
// to actions. Letters are bound in both cases except "c", which only binds
// lower case.
var bindings = map[string]Action{
	"ArrowUp": Up,
	"w":       Up,
	"W":       Up,

	"ArrowDown": Down,
	"s":         Down,
	"S":         Down,

	"ArrowLeft": Left,
	"a":         Left,
	"A":         Left,

	"ArrowRight": Right,
	"d":          Right,
	"D":          Right,

	"c":     Sneak,
	"Shift": Run,
}

// Lookup returns the action bound to key.
func Lookup(key string) (Action, bool) {
	action, ok := bindings[key]
	return action, ok
}

// Keys returns every key bound to action.
func Keys(action Action) []string {
	var keys []string
	for key, bound := range bindings {
		if bound == action {
			keys = append(keys, key)
		}
	}
	return keys
}
