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

// Package prefs takes care of persistent preference values for the memory
// editor and for any application that embeds it.
//
// The fundamental unit of the package is the pref type. Live values that
// should survive program termination are expressed as one of the concrete
// pref implementations: Bool, String, Int, Float or, for anything more
// unusual, Generic.
//
// Instances of these types are registered with a Disk instance, along with a
// unique key. The Disk takes care of marshalling the registered values to and
// from the preferences file:
//
//	var showASCII prefs.Bool
//
//	dsk, _ := prefs.NewDisk("/path/to/file.prefs")
//	dsk.Add("memedit.showascii", &showASCII)
//	dsk.Load(true)
//
// Many Disk instances can point to the same file, each handling its own
// subset of keys. Saving through one instance will not clobber values saved
// through another, the file contents are merged on every save.
//
// The concrete pref types are safe for concurrent use. Values can be set and
// read from a goroutine other than the one that drives the GUI.
//
// Preference values can be overridden from the command line with
// PushCommandLineStack(). Values found in the command line group are applied
// as the matching key is registered with a Disk.
package prefs
