// Package invariant provides contract assertions for titleseq.
//
// The sequence mutation protocol treats an out-of-range save index as a
// programming error in the caller, not a recoverable condition. These
// helpers make that contract explicit: they panic on violation.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// IndexInRange panics unless 0 <= index < length. This is the fail-fast
// check used by the rename and remove park operations.
func IndexInRange(index, length int, name string) {
	if index < 0 || index >= length {
		fail("PRECONDITION", "%s must be in range [0, %d), got %d", name, length, index)
	}
}

func fail(kind, format string, args ...interface{}) {
	msg := fmt.Sprintf(kind+" VIOLATION: "+format, args...)

	// Report the caller of the assertion, not the assertion itself.
	if _, file, line, ok := runtime.Caller(2); ok {
		msg += fmt.Sprintf("\n  at %s:%d", file, line)
	}

	panic(msg)
}
