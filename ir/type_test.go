package ir

import "testing"

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round-tripped to %s", typ, back)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Vessel")); err == nil {
		t.Error("expected error for unknown type name")
	}
}

func TestIsLeaf(t *testing.T) {
	for _, typ := range Types() {
		want := typ != ObjectType && typ != ArrayType && typ != TupleType
		if got := typ.IsLeaf(); got != want {
			t.Errorf("%s.IsLeaf() = %v, want %v", typ, got, want)
		}
	}
}
