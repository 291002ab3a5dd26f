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
	"os"

	"github.com/BurntSushi/toml"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memedit"
	"github.com/jetsetilly/memedit/logger"
	"github.com/jetsetilly/memedit/paths"
)

const themeFile = "theme.toml"

// theme collects the colors used by the demonstration. colors are specified
// as "#rrggbb" strings.
type theme struct {
	Background   string `toml:"background"`
	AddressColor string `toml:"address_color"`
	ZeroColor    string `toml:"zero_color"`
	SelectColor  string `toml:"select_color"`
}

// defaultTheme matches the colors in memedit.DefaultOptions().
func defaultTheme() theme {
	return theme{
		Background:   "#000000",
		AddressColor: "#7d9efa",
		ZeroColor:    "#616161",
		SelectColor:  "#fa9e4a",
	}
}

// loadTheme reads the theme file from the resource path. a missing file is
// not an error, the default theme is returned in that case.
func loadTheme() (theme, error) {
	thm := defaultTheme()

	pth, err := paths.ResourcePath("", themeFile)
	if err != nil {
		return thm, fmt.Errorf("theme: %w", err)
	}

	if _, err := os.Stat(pth); os.IsNotExist(err) {
		return thm, nil
	}

	if _, err := toml.DecodeFile(pth, &thm); err != nil {
		return thm, fmt.Errorf("theme: %w", err)
	}

	logger.Logf("theme", "using theme file (%s)", pth)

	return thm, nil
}

// apply the theme to an editor. returns the color the framebuffer should be
// cleared with.
func (thm theme) apply(ed *memedit.Editor) ([4]float32, error) {
	var clearColor [4]float32

	bg, err := parseColor(thm.Background)
	if err != nil {
		return clearColor, err
	}
	clearColor = [4]float32{bg.X, bg.Y, bg.Z, bg.W}

	ed.Options.AddressColor, err = parseColor(thm.AddressColor)
	if err != nil {
		return clearColor, err
	}

	ed.Options.ZeroColor, err = parseColor(thm.ZeroColor)
	if err != nil {
		return clearColor, err
	}

	ed.Options.SelectColor, err = parseColor(thm.SelectColor)
	if err != nil {
		return clearColor, err
	}

	return clearColor, nil
}

// parseColor converts a "#rrggbb" string.
func parseColor(s string) (imgui.Vec4, error) {
	var r, g, b uint8

	n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 {
		return imgui.Vec4{}, fmt.Errorf("theme: unrecognised color (%s)", s)
	}

	return imgui.Vec4{
		X: float32(r) / 255.0,
		Y: float32(g) / 255.0,
		Z: float32(b) / 255.0,
		W: 1.0,
	}, nil
}
