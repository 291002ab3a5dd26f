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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/memedit/curated"
)

// DefaultPrefsFile is the default filename for the preferences file.
const DefaultPrefsFile = "memedit.prefs"

// WarningBoilerPlate is the first line of a prefs file. A file that does not
// begin with this line is not touched by the Disk type.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value on a single line of the
// prefs file.
const keySep = " :: "

// Sentinal errors returned by the Disk type.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	NotAPrefsFile = "prefs: not a prefs file (%s)"
)

// Disk represents preference values as stored on disk. Many Disk instances
// can use the same file, each instance handling a subset of the keys in the
// file.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that have been set from the command line. these keys survive the
	// first call to Load()
	fromCommandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:            path,
		entries:         make(map[string]pref),
		fromCommandLine: make(map[string]bool),
	}, nil
}

// Add a preference to the list of entries handled by this Disk instance.
//
// If a value for the key has been supplied on the command line (see
// PushCommandLineStack()) then the preference is set to that value
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.ContainsAny(key, " \n") {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dsk.fromCommandLine[key] = true
	}

	return nil
}

// read the contents of the prefs file, returning all entries as a map.
// defunct keys are dropped. a missing file results in an empty map alongside
// the NoPrefsFile error.
func (dsk *Disk) readFile() (map[string]string, error) {
	loaded := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return loaded, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return loaded, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file by checking the first line
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return loaded, curated.Errorf(NotAPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		kv := strings.SplitN(line, keySep, 2)
		if len(kv) != 2 {
			return loaded, curated.Errorf("prefs: invalid entry in %s (%s)", dsk.path, line)
		}

		if isDefunct(kv[0]) {
			continue
		}

		loaded[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return loaded, curated.Errorf("prefs: %v", err)
	}

	return loaded, nil
}

// Load preference values from the prefs file. Values are set for the keys
// registered with this Disk instance, keys handled by other instances are
// ignored.
//
// The initial argument should be true the first time the file is loaded. On
// an initial load, registered preferences that are absent from the file are
// reset to their default values. On subsequent loads absent keys are left as
// they are.
//
// Keys that were set from the command line are not touched by the first call
// to Load(). The command line value is one-shot however, so later calls will
// set those keys from the file like any other.
func (dsk *Disk) Load(initial bool) error {
	loaded, err := dsk.readFile()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if dsk.fromCommandLine[key] {
			continue
		}

		if v, ok := loaded[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		} else if initial {
			if err := p.Reset(); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	dsk.fromCommandLine = make(map[string]bool)

	return nil
}

// Save current preference values to the prefs file.
//
// The file is read before writing so that keys handled by other Disk
// instances are preserved.
func (dsk *Disk) Save() error {
	existing, err := dsk.readFile()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for key, p := range dsk.entries {
		existing[key] = p.String()
	}

	keys := make([]string, 0, len(existing))
	for key := range existing {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", WarningBoilerPlate))
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, existing[key]))
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	n, err := f.WriteString(s.String())
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	if n != s.Len() {
		return curated.Errorf("prefs: incorrect number of characters written to %s", dsk.path)
	}

	return nil
}

// String returns the keys and values handled by this Disk instance, one entry
// per line.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%v\n", key, keySep, dsk.entries[key]))
	}
	return s.String()
}
