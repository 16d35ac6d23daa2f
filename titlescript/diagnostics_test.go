package titlescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindLostReferences(t *testing.T) {
	saves := []string{"parkA.sv6", "parkB.sv6"}
	script := `# SCRIPT FOR demo
LOAD parkA.sv6
LOAD missing park.sv6
WAIT 4000
LOAD parkB.sv6
LOAD also gone.sc6
END
`
	expected := []LostReference{
		{Line: 3, Name: "missing park.sv6"},
		{Line: 6, Name: "also gone.sc6"},
	}
	got := FindLostReferences([]byte(script), saves)
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("FindLostReferences() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindLostReferencesSkipsBareLoad(t *testing.T) {
	got := FindLostReferences([]byte("LOAD\nEND\n"), nil)
	if got != nil {
		t.Errorf("FindLostReferences() = %v, want none for a bare LOAD", got)
	}
}

func TestFindLostReferencesCleanScript(t *testing.T) {
	got := FindLostReferences([]byte("LOAD parkA.sv6\nEND\n"), []string{"parkA.sv6"})
	if got != nil {
		t.Errorf("FindLostReferences() = %v, want none", got)
	}
}
