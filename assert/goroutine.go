package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// Goroutine checks that a series of events all happen on the same goroutine.
// The zero value is ready to use: the first call to Check() adopts the
// calling goroutine and every later call reports whether it was made from
// that same goroutine.
//
// It exists to enforce documented threading requirements and for debugging.
// It should never be used for program logic.
type Goroutine struct {
	id uint64
}

// Check returns false if the calling goroutine is not the goroutine that made
// the first call to Check().
func (g *Goroutine) Check() bool {
	id := goroutineID()
	if g.id == 0 {
		g.id = id
		return true
	}
	return g.id == id
}

// goroutineID returns an identity for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine
func goroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
