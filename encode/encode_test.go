package encode_test

import (
	"bytes"
	"math"
	"testing"

	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ksptools/sfs-format/go-sfs/encode"
	"github.com/ksptools/sfs-format/go-sfs/format"
	"github.com/ksptools/sfs-format/go-sfs/ir"
	"github.com/ksptools/sfs-format/go-sfs/parse"
)

func diffText(a, b string) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(a, b, false))
}

func checkEncode(t *testing.T, node *ir.Node, want string, opts ...encode.EncodeOption) {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("unexpected output:\n%s", diffText(want, got))
	}
}

func testNode(t *testing.T) *ir.Node {
	t.Helper()
	y, err := parse.Parse([]byte(`{"TOP":{"KEY":"value","K":"1","K":"2"}}`))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestEncodePretty(t *testing.T) {
	want := `{
  "TOP": {
    "KEY": "value",
    "K": [
      "1",
      "2"
    ]
  }
}
`
	checkEncode(t, testNode(t), want)
}

func TestEncodeWire(t *testing.T) {
	checkEncode(t, testNode(t), `{"TOP":{"KEY":"value","K":["1","2"]}}`, encode.EncodeWire(true))
}

func TestEncodeTyped(t *testing.T) {
	node := testNode(t)
	ir.Retype(node)
	checkEncode(t, node, `{"TOP":{"KEY":"value","K":[1,2]}}`, encode.EncodeWire(true))
}

func TestEncodeLeaves(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromBool(true)},
		{Key: ir.FromString("n"), Val: ir.Null()},
		{Key: ir.FromString("i"), Val: ir.FromInt(-3)},
		{Key: ir.FromString("f"), Val: ir.FromFloat(1.0)},
		{Key: ir.FromString("nan"), Val: &ir.Node{Type: ir.NumberType, Float64: &nan}},
		{Key: ir.FromString("inf"), Val: &ir.Node{Type: ir.NumberType, Float64: &inf}},
		{Key: ir.FromString("t"), Val: ir.FromTuple([]float64{1, 2.5, 3})},
		{Key: ir.FromString("q"), Val: ir.FromString(`say "hi"`)},
	})
	want := `{"b":true,"n":null,"i":-3,"f":1.0,"nan":NaN,"inf":Infinity,` +
		`"t":[1.0,2.5,3.0],"q":"say \"hi\""}`
	checkEncode(t, node, want, encode.EncodeWire(true))
}

func TestEncodeEmpty(t *testing.T) {
	checkEncode(t, ir.FromKeyVals(nil), "{}\n")
	checkEncode(t, ir.FromSlice(nil), "[]\n")
}

func TestEncodeYAMLKeyOrder(t *testing.T) {
	y, err := parse.Parse([]byte(`{"z":"1","a":"2","m":"3"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := "z: \"1\"\na: \"2\"\nm: \"3\"\n"
	checkEncode(t, y, want, encode.EncodeFormat(format.YAMLFormat))
}

// parse -> encode -> parse must reproduce the same tree for documents
// without duplicate keys
func TestRoundTripShape(t *testing.T) {
	ins := []string{
		`{"GAME":{"version":"1.12.5","PARAMETERS":{"FLIGHT":{}}}}`,
		`{"a":"x","b":{"c":"y","d":""}}`,
		`{"K":"1","K":"2","K":"3"}`,
	}
	for _, in := range ins {
		first, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(first, buf); err != nil {
			t.Fatal(err)
		}
		second, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", buf.String(), err)
		}
		if ir.Compare(first, second) != 0 {
			t.Errorf("%q: round trip changed the tree:\n%s",
				in, diffText(encode.MustString(first), encode.MustString(second)))
		}
	}
}
