// Package debugui renders Dear ImGui panels from inside an ECS schedule.
// Panels are entities carrying an ImguiItem; ImguiSystem defers their
// render functions so they run after every other system has updated.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/roamer/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// ImguiSystem only updates it when the singleton has been added.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render functions.
// It also updates the ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Iter() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// RegisterComponents registers the components this package spawns.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
}
