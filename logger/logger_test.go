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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/memedit/logger"
	"github.com/jetsetilly/memedit/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	cmp := &test.CompareWriter{}

	test.ExpectedFailure(t, logger.Write(cmp))
	test.Equate(t, cmp.Compare(""), true)

	logger.Log("test", "this is a test")
	test.ExpectedSuccess(t, logger.Write(cmp))
	test.Equate(t, cmp.Compare("test: this is a test\n"), true)

	cmp.Clear()
	logger.Log("test2", "this is another test")
	test.ExpectedSuccess(t, logger.Write(cmp))
	test.Equate(t, cmp.Compare("test: this is a test\ntest2: this is another test\n"), true)
}

func TestTail(t *testing.T) {
	logger.Clear()

	cmp := &test.CompareWriter{}

	logger.Log("test", "a")
	logger.Log("test", "b")
	logger.Log("test", "c")

	logger.Tail(cmp, 2)
	test.Equate(t, cmp.Compare("test: b\ntest: c\n"), true)

	// asking for more entries than exist is not an error
	cmp.Clear()
	logger.Tail(cmp, 100)
	test.Equate(t, cmp.Compare("test: a\ntest: b\ntest: c\n"), true)
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	cmp := &test.CompareWriter{}

	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")

	test.ExpectedSuccess(t, logger.Write(cmp))
	test.Equate(t, cmp.Compare("test: this is a test (repeat x3)\n"), true)

	// a different detail field breaks the repetition
	cmp.Clear()
	logger.Log("test", "something else")
	test.ExpectedSuccess(t, logger.Write(cmp))
	test.Equate(t, cmp.Compare("test: this is a test (repeat x3)\ntest: something else\n"), true)
}

func TestEcho(t *testing.T) {
	logger.Clear()

	cmp := &test.CompareWriter{}

	logger.SetEcho(cmp)
	defer logger.SetEcho(nil)

	logger.Log("test", "echoed")
	test.Equate(t, cmp.Compare("test: echoed\n"), true)

	// echoed entries accumulate in the writer, including repeats
	logger.Log("test", "echoed")
	test.Equate(t, cmp.Compare("test: echoed\ntest: echoed (repeat x2)\n"), true)
}

func TestNewlineDiscipline(t *testing.T) {
	logger.Clear()

	cmp := &test.CompareWriter{}

	// newlines in either field are flattened so that one entry is always
	// exactly one line
	logger.Log("test", "multi\nline")
	test.ExpectedSuccess(t, logger.Write(cmp))
	test.Equate(t, cmp.Compare("test: multi line\n"), true)
}
