package ir

import (
	"errors"
	"math"
	"testing"
)

func TestReTypeScalars(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"True", FromBool(true)},
		{"FALSE", FromBool(false)},
		{"None", Null()},
		{"none", Null()},
		{"42", FromInt(42)},
		{"-7", FromInt(-7)},
		{"3.14", FromFloat(3.14)},
		{"1e14", FromFloat(1e14)},
		{"hello", FromString("hello")},
		{"Infinity", FromString("Infinity")},
		{"1.0,2.0,3.0", FromTuple([]float64{1, 2, 3})},
		{"0.1,0.2,0.3,0.4", FromTuple([]float64{0.1, 0.2, 0.3, 0.4})},
		// wrong arity or junk component: whole string kept
		{"1.0,2.0", FromString("1.0,2.0")},
		{"1,2,3,4,5", FromString("1,2,3,4,5")},
		{"1.0,x,3.0", FromString("1.0,x,3.0")},
		{"", FromString("")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			y := FromString(tt.in)
			y.ReType()
			if Compare(y, tt.want) != 0 {
				t.Errorf("ReType(%q) = %v (%s), want %v (%s)",
					tt.in, y, y.Type, tt.want, tt.want.Type)
			}
		})
	}
}

func TestReTypeNaN(t *testing.T) {
	y := FromString("NaN")
	y.ReType()
	if y.Type != NumberType || y.Float64 == nil {
		t.Fatalf("ReType(NaN) = %s, want float number", y.Type)
	}
	// NaN != NaN under IEEE 754, check with a predicate
	if !math.IsNaN(*y.Float64) {
		t.Errorf("ReType(NaN) = %v, want NaN", *y.Float64)
	}
}

func TestRetypeIdempotent(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromString("True")},
		{Key: FromString("b"), Val: FromString("42")},
		{Key: FromString("c"), Val: FromString("1.0,2.0,3.0")},
		{Key: FromString("d"), Val: FromSlice([]*Node{
			FromString("3.14"),
			FromString("hello"),
		})},
	})
	Retype(root)
	once := root.Clone()
	Retype(root)
	if Compare(root, once) != 0 {
		t.Errorf("second Retype changed the tree: %v != %v", root, once)
	}
}

func TestRetypePreservesOrder(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: FromString("z"), Val: FromString("1")},
		{Key: FromString("a"), Val: FromString("2")},
		{Key: FromString("m"), Val: FromString("3")},
	})
	Retype(root)
	want := []string{"z", "a", "m"}
	for i, f := range root.Fields {
		if f.String != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.String, want[i])
		}
	}
}

func TestToString(t *testing.T) {
	for _, tt := range []struct {
		node *Node
		want string
	}{
		{FromBool(true), "True"},
		{FromBool(false), "False"},
		{FromInt(42), "42"},
		{FromFloat(3.14), "3.14"},
		{FromString("hello"), "hello"},
	} {
		got, err := tt.node.ToString()
		if err != nil {
			t.Errorf("ToString(%s): %v", tt.node.Type, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ToString(%s) = %q, want %q", tt.node.Type, got, tt.want)
		}
	}
}

func TestToStringNotSupported(t *testing.T) {
	for _, node := range []*Node{
		FromTuple([]float64{1, 2, 3}),
		FromSlice([]*Node{FromString("a")}),
		FromKeyVals(nil),
	} {
		_, err := node.ToString()
		if !errors.Is(err, ErrNotSupported) {
			t.Errorf("ToString(%s) err = %v, want ErrNotSupported", node.Type, err)
		}
	}
}
