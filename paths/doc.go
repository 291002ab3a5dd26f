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

// Package paths contains functions to prepare paths for files used by the
// demonstration application: preferences, the theme file and the imgui ini
// file. ResourcePath() creates directories as required but does not
// otherwise touch or create files.
//
// The base path depends on how the binary was built. For builds with the
// "release" build tag the path is rooted in the user's configuration
// directory. On modern Linux systems the full path would be something like:
//
//	/home/user/.config/memedit/
//
// For non-"release" builds the path is rooted in the current working
// directory:
//
//	.memedit
//
// During development it is more convenient to have the config directory
// close to hand. For release binaries the config directory should be
// somewhere the end-user expects.
package paths
