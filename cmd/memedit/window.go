// This file is part of MemEdit.
//
// MemEdit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MemEdit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MemEdit.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memedit/paths"
)

// window ties the imgui context, the SDL platform and the OpenGL renderer
// together.
//
// MUST ONLY be used from the main thread.
type window struct {
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *renderer

	// the font the editor is asked to use for all of its text roles. added to
	// the atlas before the renderer bakes the font texture
	font imgui.Font

	clearColor [4]float32
}

// newWindow is the preferred method of initialisation for the window type.
func newWindow() (*window, error) {
	wnd := &window{
		context:    imgui.CreateContext(nil),
		clearColor: [4]float32{0.0, 0.0, 0.0, 1.0},
	}
	wnd.io = imgui.CurrentIO()
	wnd.font = wnd.io.Fonts().AddFontDefault()

	iniPath, err := paths.ResourcePath("", "imgui.ini")
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	wnd.io.SetIniFilename(iniPath)

	// creation order is important. the renderer requires the GL context
	// created by the platform
	wnd.plt, err = newPlatform(wnd.io)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	wnd.rnd, err = newRenderer(wnd.io)
	if err != nil {
		wnd.plt.destroy()
		return nil, fmt.Errorf("window: %w", err)
	}

	return wnd, nil
}

// destroy cleans up resources in the reverse order of creation.
func (wnd *window) destroy() {
	wnd.rnd.destroy()
	wnd.plt.destroy()
	wnd.context.Destroy()
}

// fonts returns the font table to hand to the editor.
func (wnd *window) fonts() []imgui.Font {
	return []imgui.Font{wnd.font}
}

// service one frame of the GUI. blocks on the buffer swap when vsync is
// honoured by the driver.
func (wnd *window) service(dmo *demo) {
	wnd.plt.processEvents()

	wnd.plt.newFrame()
	imgui.NewFrame()

	wnd.drawLauncher(dmo)
	dmo.ed.DrawWindow()

	// this call only creates the draw data list. actual rendering to the
	// framebuffer is done below
	imgui.Render()

	wnd.rnd.preRender(wnd.clearColor)
	wnd.rnd.render(wnd.plt.displaySize(), wnd.plt.framebufferSize(), imgui.RenderedDrawData())
	wnd.plt.postRender()
}

// the small control window from which the editor can be reopened after it
// has been closed.
func (wnd *window) drawLauncher(dmo *demo) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 25, Y: 25}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV("MemEdit Demo", nil, imgui.WindowFlagsAlwaysAutoResize)

	imgui.Checkbox("Memory Editor", &dmo.ed.Options.IsOpen)

	if imgui.Button("Quit") {
		wnd.plt.shouldStop = true
	}

	imgui.End()
}
