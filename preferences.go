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

package memedit

import (
	"fmt"
	"strconv"

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/prefs"
)

// Preferences bridges an Editor's options to the prefs system, so that the
// state of the editor survives between sessions of the host application.
//
// The colors in Options are considered part of the host application's look
// and are not saved to disk.
type Preferences struct {
	ed  *Editor
	dsk *prefs.Disk
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The current content of the prefs file is applied to the
// editor's options immediately.
//
// Add all address ranges to the editor before calling this function,
// otherwise a region selection from a previous session cannot be restored.
func NewPreferences(ed *Editor, path string) (*Preferences, error) {
	p := &Preferences{ed: ed}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	// a value of the empty string leaves the option as it is. the options
	// carry their defaults already so there is nothing to restore

	err = p.dsk.Add("memedit.columns", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			ed.Options.ColumnCount = n
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%d", ed.Options.columns())
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memedit.showascii", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			ed.Options.ShowASCII = b
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%v", ed.Options.ShowASCII)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memedit.zerocolor", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			ed.Options.ShowZeroColor = b
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%v", ed.Options.ShowZeroColor)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memedit.open", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			ed.Options.IsOpen = b
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%v", ed.Options.IsOpen)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memedit.region", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}

			// a region that has not been added is not an error. Select()
			// logs the event
			ed.Select(v)
			return nil
		},
		func() prefs.Value {
			return ed.SelectedName()
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memedit.preview.endianness", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}
			for _, e := range endianOptions {
				if e.String() == v {
					ed.Options.Preview.Endianness = e
					return nil
				}
			}
			return curated.Errorf("memedit: unrecognised endianness (%s)", v)
		},
		func() prefs.Value {
			return ed.Options.Preview.Endianness.String()
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memedit.preview.format", prefs.NewGeneric(
		func(s prefs.Value) error {
			v := s.(string)
			if v == "" {
				return nil
			}
			for _, f := range formatOptions {
				if f.String() == v {
					ed.Options.Preview.Format = f
					return nil
				}
			}
			return curated.Errorf("memedit: unrecognised data format (%s)", v)
		},
		func() prefs.Value {
			return ed.Options.Preview.Format.String()
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// prefs file may not exist yet
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// Load the current editor preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save the current editor preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
