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

package test

import "testing"

// ExpectedFailure asserts that v represents a failed operation: a false
// bool or a non-nil error.
func ExpectedFailure(t *testing.T, v interface{}) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("operation unexpectedly succeeded (bool)")
		}

	case error:
		if v == nil {
			t.Errorf("operation unexpectedly succeeded (error)")
		}

	case nil:
		// a nil error loses its type on the way into the function
		t.Errorf("operation unexpectedly succeeded (nil)")

	default:
		t.Fatalf("cannot test a %T for failure", v)
	}
}

// ExpectedSuccess asserts that v represents a successful operation: a true
// bool or a nil error.
func ExpectedSuccess(t *testing.T, v interface{}) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("operation unexpectedly failed (bool)")
		}

	case error:
		if v != nil {
			t.Errorf("operation unexpectedly failed: %v", v)
		}

	case nil:
		// a nil error loses its type on the way into the function. success

	default:
		t.Fatalf("cannot test a %T for success", v)
	}
}
