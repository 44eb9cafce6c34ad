// Package input holds the logical movement and modifier actions a player can
// hold, the record of which ones are currently held, and the fixed table that
// maps key identifiers onto those actions.
package input

// Action is a logical input the simulation understands.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	Sneak
	Run

	actionCount
)

var actionNames = [actionCount]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
	Sneak: "Sneak",
	Run:   "Run",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{Up, Down, Left, Right, Sneak, Run}
}

func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

func (a Action) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return actionNames[a]
}
