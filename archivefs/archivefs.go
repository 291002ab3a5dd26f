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

// Package archivefs treats the contents of ZIP files as though they were
// part of the normal file system. A path such as
//
//	samples.zip/pcm/tone.wav
//
// refers to the file pcm/tone.wav inside the archive samples.zip. Paths that
// do not pass through an archive work as normal.
package archivefs

import (
	"fmt"
	"io"
)

// Open and return an io.ReadSeeker for the specified filename. The filename
// can be inside an archive supported by archivefs.
//
// The content of the file is copied into memory. No file handle remains open
// when the function returns.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path

	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()

	if afs.IsDir() {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", filename)
	}

	return afs.Open()
}
