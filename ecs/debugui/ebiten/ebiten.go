// Package ebiten hosts the debugui panels in an Ebiten window.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a singleton so systems and the game loop share one backend.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. ImGui layout is not
// persisted to an ini file.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Frame wraps fn in an ImGui frame. Run the schedule holding ImguiSystem
// inside fn so the deferred panel renders land in this frame.
func (b ImguiBackend) Frame(fn func()) {
	b.BeginFrame()
	fn()
	b.EndFrame()
}
