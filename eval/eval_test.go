package eval

import (
	"testing"

	"github.com/ksptools/sfs-format/go-sfs/ir"
	"github.com/ksptools/sfs-format/go-sfs/parse"
)

func vessels(t *testing.T) *ir.Node {
	t.Helper()
	y, err := parse.Parse([]byte(
		`{"VESSEL":{"name":"alpha","sit":"ORBITING"},` +
			`"VESSEL":{"name":"beta","sit":"LANDED"},` +
			`"VESSEL":{"name":"gamma","sit":"ORBITING"}}`), parse.ReType(true))
	if err != nil {
		t.Fatal(err)
	}
	return ir.Get(y, "VESSEL")
}

func TestSelect(t *testing.T) {
	res, err := Select(vessels(t), `sit == "ORBITING"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Values) != 2 {
		t.Fatalf("got %d elements, want 2", len(res.Values))
	}
	want := []string{"alpha", "gamma"}
	for i, elt := range res.Values {
		if got := ir.Get(elt, "name").String; got != want[i] {
			t.Errorf("element %d name = %q, want %q", i, got, want[i])
		}
	}
}

func TestSelectUndefinedVariable(t *testing.T) {
	res, err := Select(vessels(t), `missing == "x"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Values) != 0 {
		t.Errorf("got %d elements, want 0", len(res.Values))
	}
}

func TestSelectErrors(t *testing.T) {
	if _, err := Select(vessels(t), `sit +`); err == nil {
		t.Error("expected compile error")
	}
	if _, err := Select(vessels(t), `name`); err == nil {
		t.Error("expected non-bool result error")
	}
	if _, err := Select(ir.FromString("x"), `true`); err == nil {
		t.Error("expected sequence shape error")
	}
}
