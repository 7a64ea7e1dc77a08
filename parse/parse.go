// Package parse builds savefile trees from JSON text.
//
// The builder has no knowledge of the savefile notation; it accepts any
// syntactically valid JSON text (normally the output of the translate
// package) and materializes it as an ir.Node tree. Its one departure from
// plain JSON object semantics is duplicate-key handling: object members are
// consumed as an ordered stream of pairs, and consecutive members sharing a
// key are merged into a sequence.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/ksptools/sfs-format/go-sfs/debug"
	"github.com/ksptools/sfs-format/go-sfs/ir"
)

// ErrMalformedInput reports text that is not syntactically valid JSON. No
// partial tree is ever returned alongside it.
var ErrMalformedInput = errors.New("malformed input")

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	dec := jsontext.NewDecoder(bytes.NewReader(d), jsontext.AllowDuplicateNames(true))
	res, err := parseValue(dec)
	if err != nil {
		return nil, malformed(dec, err)
	}
	// the document is one value; anything after it is an error
	if _, err := dec.ReadToken(); err != io.EOF {
		return nil, malformed(dec, fmt.Errorf("trailing data"))
	}
	if debug.Parse() {
		debug.Logf("parsed document:\n%s\n", debug.Tree{Node: res})
	}
	if pOpts.reType {
		ir.Retype(res)
		if debug.Retype() {
			debug.Logf("retyped document:\n%s\n", debug.Tree{Node: res})
		}
	}
	return res, nil
}

func malformed(dec *jsontext.Decoder, err error) error {
	return fmt.Errorf("%w: %v (byte %d)", ErrMalformedInput, err, dec.InputOffset())
}

func parseValue(dec *jsontext.Decoder) (*ir.Node, error) {
	switch dec.PeekKind() {
	case '{':
		return parseObj(dec, &ir.Node{})
	case '[':
		return parseArr(dec, &ir.Node{Type: ir.ArrayType})
	}
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case '"':
		return ir.FromString(tok.String()), nil
	case 't':
		return ir.FromBool(true), nil
	case 'f':
		return ir.FromBool(false), nil
	case 'n':
		return ir.Null(), nil
	case '0':
		raw := tok.String()
		i, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return ir.FromInt(i), nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", raw, err)
		}
		return ir.FromFloat(f), nil
	default:
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
}

func parseObj(dec *jsontext.Decoder, at *ir.Node) (*ir.Node, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, err
	}
	kvs := []ir.KeyVal{}
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		key := ir.FromString(tok.String())
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, err
	}
	return objFromKVs(at, kvs), nil
}

// objFromKVs materializes an object from its ordered pair stream. Runs of
// consecutive pairs sharing a key collapse into one entry: a run of one
// keeps its value unchanged, a longer run becomes a sequence of the run's
// values in order. Repeats separated by a different key are distinct runs;
// the later run's value wins while the entry keeps its first-occurrence
// position, matching plain JSON object semantics.
func objFromKVs(at *ir.Node, kvs []ir.KeyVal) *ir.Node {
	grouped := make([]ir.KeyVal, 0, len(kvs))
	for i := 0; i < len(kvs); {
		j := i + 1
		for j < len(kvs) && kvs[j].Key.String == kvs[i].Key.String {
			j++
		}
		var val *ir.Node
		if j-i == 1 {
			val = kvs[i].Val
		} else {
			vals := make([]*ir.Node, 0, j-i)
			for k := i; k < j; k++ {
				vals = append(vals, kvs[k].Val)
			}
			val = ir.FromSlice(vals)
		}
		grouped = upsert(grouped, kvs[i].Key, val)
		i = j
	}
	return ir.FromKeyValsAt(at, grouped)
}

func upsert(kvs []ir.KeyVal, key, val *ir.Node) []ir.KeyVal {
	for i := range kvs {
		if kvs[i].Key.String == key.String {
			kvs[i].Val = val
			return kvs
		}
	}
	return append(kvs, ir.KeyVal{Key: key, Val: val})
}

func parseArr(dec *jsontext.Decoder, at *ir.Node) (*ir.Node, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, err
	}
	for dec.PeekKind() != ']' {
		elt, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		elt.Parent = at
		elt.ParentIndex = len(at.Values)
		at.Values = append(at.Values, elt)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, err
	}
	return at, nil
}
