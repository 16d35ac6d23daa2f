package invariant_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/attractmode/titleseq/internal/invariant"
)

func TestPreconditionPass(t *testing.T) {
	// Should not panic
	invariant.Precondition(true, "this should pass")
	invariant.Precondition(len("hello") > 0, "string not empty")
}

func TestPreconditionFail(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for false precondition")
		}
		msg := fmt.Sprintf("%v", r)
		if !strings.Contains(msg, "PRECONDITION VIOLATION") {
			t.Errorf("expected PRECONDITION VIOLATION, got: %s", msg)
		}
		if !strings.Contains(msg, "index is stale") {
			t.Errorf("expected custom message, got: %s", msg)
		}
		if !strings.Contains(msg, "at ") {
			t.Errorf("expected caller context, got: %s", msg)
		}
	}()

	invariant.Precondition(false, "index is stale")
}

func TestIndexInRange(t *testing.T) {
	// Should not panic
	invariant.IndexInRange(0, 3, "save index")
	invariant.IndexInRange(2, 3, "save index")

	for _, bad := range []int{-1, 3, 99} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for index %d with length 3", bad)
				}
			}()
			invariant.IndexInRange(bad, 3, "save index")
		}()
	}
}
