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

package memedit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/memedit"
	"github.com/jetsetilly/memedit/test"
)

const tempPrefsFile = "memedit_preferences_test"

func getTmpPrefsFile(t *testing.T) string {
	t.Helper()
	pth := filepath.Join(os.TempDir(), tempPrefsFile)
	_ = os.Remove(pth)
	return pth
}

func newTestEditor(t *testing.T) *memedit.Editor {
	t.Helper()
	ed := memedit.NewEditor("test", func(_ uint64) uint8 { return 0 })
	ed.SetReadOnly(true)
	test.ExpectedSuccess(t, ed.AddRange("RAM", 0, 0x100))
	test.ExpectedSuccess(t, ed.AddRange("ROM", 0x100, 0x200))
	return ed
}

func TestPreferencesRoundTrip(t *testing.T) {
	pth := getTmpPrefsFile(t)
	defer func() {
		_ = os.Remove(pth)
	}()

	ed := newTestEditor(t)
	prf, err := memedit.NewPreferences(ed, pth)
	test.ExpectedSuccess(t, err)

	ed.Options.ColumnCount = 8
	ed.Options.ShowASCII = false
	ed.Options.Preview.Endianness = memedit.BigEndian
	ed.Options.Preview.Format = memedit.FormatI32
	ed.Select("ROM")
	test.ExpectedSuccess(t, prf.Save())

	// a new editor over the same file restores the saved state
	ed = newTestEditor(t)
	test.Equate(t, ed.SelectedName(), "RAM")

	_, err = memedit.NewPreferences(ed, pth)
	test.ExpectedSuccess(t, err)

	test.Equate(t, ed.Options.ColumnCount, 8)
	test.Equate(t, ed.Options.ShowASCII, false)
	test.Equate(t, ed.SelectedName(), "ROM")
	test.Equate(t, ed.Options.Preview.Endianness == memedit.BigEndian, true)
	test.Equate(t, ed.Options.Preview.Format == memedit.FormatI32, true)
}

func TestPreferencesNoFile(t *testing.T) {
	pth := getTmpPrefsFile(t)

	// a missing prefs file is not an error. the editor simply keeps its
	// default options
	ed := newTestEditor(t)
	_, err := memedit.NewPreferences(ed, pth)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ed.Options.ColumnCount, 16)
	test.Equate(t, ed.Options.ShowASCII, true)
}
