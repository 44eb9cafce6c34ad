package input

// State records which actions are currently held. The zero value has
// nothing held. It is written by whatever translates device events and read
// by the player once per tick; both happen on the frame goroutine, so State
// does no locking.
type State struct {
	held [actionCount]bool
}

// Intent is a snapshot of every action's held flag.
type Intent struct {
	Up, Down, Left, Right bool
	Sneak, Run            bool
}

// Set records the latest press (held=true) or release for action.
// Unknown actions are ignored.
func (s *State) Set(action Action, held bool) {
	if !action.Valid() {
		return
	}
	s.held[action] = held
}

// Held reports whether action is currently held.
func (s *State) Held(action Action) bool {
	if !action.Valid() {
		return false
	}
	return s.held[action]
}

// Apply translates a key press or release through the binding table.
// It returns false, leaving the state untouched, for unbound keys.
func (s *State) Apply(key string, held bool) bool {
	action, ok := Lookup(key)
	if !ok {
		return false
	}
	s.Set(action, held)
	return true
}

// Reset releases every action.
func (s *State) Reset() {
	s.held = [actionCount]bool{}
}

// Intent returns the current flags as a value.
func (s *State) Intent() Intent {
	if s == nil {
		return Intent{}
	}
	return Intent{
		Up:    s.held[Up],
		Down:  s.held[Down],
		Left:  s.held[Left],
		Right: s.held[Right],
		Sneak: s.held[Sneak],
		Run:   s.held[Run],
	}
}
