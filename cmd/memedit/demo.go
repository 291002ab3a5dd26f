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
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/memedit"
	"github.com/jetsetilly/memedit/archivefs"
	"github.com/jetsetilly/memedit/logger"
)

// the amount of demonstration RAM. also the base address for mapped files.
const ramSize = 0x10000

// written to the bottom of RAM so the ASCII column has something to show.
const greeting = "hello from the memedit demo"

// a file mapped into the demonstration address space. regions are not
// writable.
type region struct {
	name  string
	start uint64
	data  []byte
}

// demo assembles an address space from a block of RAM and any files named on
// the command line, and attaches an editor to it.
type demo struct {
	ed *memedit.Editor

	ram     []byte
	regions []region
}

// newDemo is the preferred method of initialisation for the demo type.
func newDemo(files []string, readOnly bool) (*demo, error) {
	dmo := &demo{
		ram: make([]byte, ramSize),
	}

	// fill RAM with a recognisable pattern and place the greeting at the
	// bottom
	for i := range dmo.ram {
		dmo.ram[i] = uint8(i)
	}
	copy(dmo.ram, greeting)

	dmo.ed = memedit.NewEditor("Memory", dmo.read)
	dmo.ed.SetWriteFunc(dmo.write)
	dmo.ed.SetReadOnly(readOnly)

	if err := dmo.ed.AddRange("RAM", 0, ramSize); err != nil {
		return nil, err
	}
	if err := dmo.ed.AddRange("Zero Page", 0, 0x100); err != nil {
		return nil, err
	}

	// map files after the RAM block. each file starts on a page boundary so
	// that addresses in the editor read nicely
	origin := uint64(ramSize)
	for _, fn := range files {
		data, err := loadFile(fn)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			logger.Logf("demo", "%s is empty. not mapping", fn)
			continue
		}

		r := region{
			name:  filepath.Base(fn),
			start: origin,
			data:  data,
		}
		if err := dmo.ed.AddRange(r.name, r.start, r.start+uint64(len(r.data))); err != nil {
			return nil, err
		}
		dmo.regions = append(dmo.regions, r)
		logger.Logf("demo", "%s mapped at %#x (%d bytes)", r.name, r.start, len(r.data))

		origin = (origin + uint64(len(r.data)) + 0xfff) &^ 0xfff
	}

	return dmo, nil
}

// loadFile returns the content to map for a file named on the command line.
// audio files are decoded, everything else is mapped as it is. the file can
// be inside a ZIP archive.
func loadFile(fn string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".wav", ".mp3":
		p, err := loadPCM(fn)
		if err != nil {
			return nil, err
		}
		return p.data, nil
	}

	r, _, err := archivefs.Open(fn)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// read implements memedit.ReadFunc. addresses outside of RAM and outside of
// any mapped region read as zero.
func (dmo *demo) read(addr uint64) uint8 {
	if addr < ramSize {
		return dmo.ram[addr]
	}
	for _, r := range dmo.regions {
		if addr >= r.start && addr < r.start+uint64(len(r.data)) {
			return r.data[addr-r.start]
		}
	}
	return 0
}

// write implements memedit.WriteFunc.
func (dmo *demo) write(addr uint64, v uint8) {
	if addr < ramSize {
		dmo.ram[addr] = v
		return
	}
	logger.Logf("demo", "write to file region ignored (%#x)", addr)
}
