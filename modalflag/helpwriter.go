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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter buffers the usage output of the flag package so that it can be
// reshaped before the user sees it. it is registered as the output of the
// embedded flag.FlagSet; nothing reaches the user until Usage() reassembles
// the buffered message.
type helpWriter struct {
	buf strings.Builder
}

// Write implements the io.Writer interface for the flag package to use.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buf.Write(p)
}

func (hw *helpWriter) Clear() {
	hw.buf.Reset()
}

// Usage writes the reassembled help message to output. the first line of the
// buffered flag output is the banner line and is extended with the mode
// name; the sub-mode list and any additional help text follow the flag
// descriptions.
func (hw *helpWriter) Usage(output io.Writer, mode string, subModes []string, additionalHelp string) {
	s := hw.buf.String()

	// with no flags defined the flag package emits nothing but the bare
	// banner. when there are no sub-modes either there is nothing to say
	if s == "Usage:\n" && len(subModes) == 0 {
		if mode == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", mode)
		}
		return
	}

	banner, flagHelp, _ := strings.Cut(s, "\n")
	if mode == "" {
		fmt.Fprintln(output, banner)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", banner, mode)
	}
	fmt.Fprint(output, flagHelp)

	if len(subModes) > 0 {
		// a blank line separates the flag descriptions from the sub-mode list
		if flagHelp != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
