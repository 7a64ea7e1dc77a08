package sfs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ksptools/sfs-format/go-sfs/ir"
	"github.com/ksptools/sfs-format/go-sfs/parse"
	"github.com/ksptools/sfs-format/go-sfs/translate"
)

func TestParseMinimal(t *testing.T) {
	y, err := Parse([]byte("TOP\n{\nKEY = value\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	top := ir.Get(y, "TOP")
	if top == nil || top.Type != ir.ObjectType {
		t.Fatalf("TOP = %v, want object", top)
	}
	v := ir.Get(top, "KEY")
	if v == nil || v.String != "value" {
		t.Fatalf("TOP.KEY = %v, want \"value\"", v)
	}
}

func TestParseDuplicateSiblings(t *testing.T) {
	y, err := Parse([]byte("TOP\n{\nK = 1\nK = 2\nK = 3\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	k := ir.Get(ir.Get(y, "TOP"), "K")
	if k.Type != ir.ArrayType || len(k.Values) != 3 {
		t.Fatalf("K = %v (%s), want 3-element sequence", k, k.Type)
	}
	for i, want := range []string{"1", "2", "3"} {
		if k.Values[i].String != want {
			t.Errorf("K[%d] = %q, want %q", i, k.Values[i].String, want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("TOP\n{\nno assignment here\n}\n"))
	if !errors.Is(err, parse.ErrMalformedInput) {
		t.Errorf("err = %v, want ErrMalformedInput", err)
	}
}

func TestParseIntermediate(t *testing.T) {
	in := []byte("TOP\n{\nKEY = value\n}\n")
	buf := bytes.NewBuffer(nil)
	if _, err := Parse(in, Intermediate(buf)); err != nil {
		t.Fatal(err)
	}
	want := translate.Translate(in)
	if diff := cmp.Diff(string(want), buf.String()); diff != "" {
		t.Errorf("intermediate text mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReType(t *testing.T) {
	y, err := Parse([]byte("TOP\n{\nN = 42\nV = 1.0,2.0,3.0\n}\n"), ReType(true))
	if err != nil {
		t.Fatal(err)
	}
	top := ir.Get(y, "TOP")
	n := ir.Get(top, "N")
	if n.Type != ir.NumberType || n.Int64 == nil || *n.Int64 != 42 {
		t.Errorf("N = %v (%s), want int 42", n, n.Type)
	}
	v := ir.Get(top, "V")
	if v.Type != ir.TupleType || len(v.Values) != 3 {
		t.Errorf("V = %v (%s), want 3-tuple", v, v.Type)
	}
}

const summaryDoc = "GAME\n{\nTitle = Voyage (SANDBOX)\n" +
	"persistentTimestamp = 2024-04-26T21:05:33.1230000\n" +
	"version = 1.12.5\nversionFull = 1.12.5.3190 (LinuxPlayer)\n}\n"

func TestSummarize(t *testing.T) {
	y, err := Parse([]byte(summaryDoc))
	if err != nil {
		t.Fatal(err)
	}
	s, err := Summarize(y, false)
	if err != nil {
		t.Fatal(err)
	}
	want := &Summary{
		Title:    "Voyage (SANDBOX)",
		SaveTime: "2024-04-26 21:05",
		Version:  "1.12.5",
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	s, err = Summarize(y, true)
	if err != nil {
		t.Fatal(err)
	}
	if s.Version != "1.12.5.3190 (LinuxPlayer)" {
		t.Errorf("full version = %q", s.Version)
	}
}

func TestSummarizeMissingField(t *testing.T) {
	y, err := Parse([]byte("GAME\n{\nversion = 1.12.5\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Summarize(y, false); err == nil {
		t.Error("expected error for missing Title")
	}
}
