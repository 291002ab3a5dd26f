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

package curated_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/memedit/curated"
	"github.com/jetsetilly/memedit/test"
)

const testPattern = "test error: %s"

func TestMatching(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	test.Equate(t, curated.IsAny(e), true)
	test.Equate(t, curated.Is(e, testPattern), true)
	test.Equate(t, curated.Is(e, "some other pattern"), false)

	// errors from other packages are not curated errors
	f := fmt.Errorf("plain error")
	test.Equate(t, curated.IsAny(f), false)
	test.Equate(t, curated.Is(f, testPattern), false)

	// nil is never a match
	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Is(nil, testPattern), false)
	test.Equate(t, curated.Has(nil, testPattern), false)
}

func TestChaining(t *testing.T) {
	const wrapPattern = "wrapped: %v"

	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)

	// Is() only matches the outermost pattern
	test.Equate(t, curated.Is(f, testPattern), false)
	test.Equate(t, curated.Is(f, wrapPattern), true)

	// Has() finds patterns anywhere in the chain
	test.Equate(t, curated.Has(f, testPattern), true)
	test.Equate(t, curated.Has(f, wrapPattern), true)
	test.Equate(t, curated.Has(e, wrapPattern), false)
}

func TestNormalisation(t *testing.T) {
	// adjacent duplicate message parts are removed
	e := curated.Errorf("open file: %v", curated.Errorf("open file: %s", "no such file"))
	test.Equate(t, e.Error(), "open file: no such file")

	// distinct parts are untouched
	f := curated.Errorf("reading theme: %v", curated.Errorf("open file: %s", "no such file"))
	test.Equate(t, f.Error(), "reading theme: open file: no such file")
}
