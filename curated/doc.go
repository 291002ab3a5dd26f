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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and can be used wherever a
// regular error is expected.
//
// Errors are created with the Errorf() function, which works like Errorf()
// from the fmt package except that the format string doubles as the
// identity of the error. Packages declare their error patterns as string
// constants:
//
//	const NoPrefsFile = "no prefs file (%s)"
//
//	return curated.Errorf(NoPrefsFile, path)
//
// A caller can then test for the specific error with the Is() function,
// using the same pattern constant:
//
//	if curated.Is(err, prefs.NoPrefsFile) {
//		// a missing prefs file is fine on first run
//	}
//
// Has() works like Is() but looks for the pattern anywhere in a chain of
// curated errors, for when an error has been wrapped by another Errorf()
// call. IsAny() simply reports whether an error originated in this package
// at all.
//
// When curated errors wrap one another the formatted message can repeat
// itself ("open file: open file: no such file"). The Error() function
// normalises adjacent duplicate parts out of the message so that logs stay
// readable.
package curated
