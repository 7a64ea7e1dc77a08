package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"

	"github.com/ksptools/sfs-format/go-sfs/format"
	"github.com/ksptools/sfs-format/go-sfs/ir"
)

type EncState struct {
	line, col     int
	depth, indent int
	wire          bool

	format format.Format

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		d, err := yaml.Marshal(ir.ToMapSlice(node))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return writeString(w, string(d))
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	es.col = 1
	es.depth = 0
	return writeNL(w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObj(node, w, es)
	case ir.ArrayType, ir.TupleType:
		return encodeArr(node, w, es)
	case ir.StringType:
		return writeQuoted(w, node.String, es, ValueColor)
	case ir.BoolType:
		if node.Bool {
			return writeColored(w, "true", es, ValueColor)
		}
		return writeColored(w, "false", es, ValueColor)
	case ir.NullType:
		return writeColored(w, "null", es, ValueColor)
	case ir.NumberType:
		return writeColored(w, formatNumber(node), es, ValueColor)
	default:
		return fmt.Errorf("%w: unexpected node type %s", ErrEncoding, node.Type)
	}
}

func encodeObj(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, "{", es, SepColor); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeColored(w, ",", es, SepColor); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeQuoted(w, node.Fields[i].String, es, FieldColor); err != nil {
			return err
		}
		if err := writeColored(w, keySep(es), es, SepColor); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		es.colorType = node.Type
	}
	es.depth--
	if len(node.Fields) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeColored(w, "}", es, SepColor)
}

func encodeArr(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeColored(w, "[", es, SepColor); err != nil {
		return err
	}
	es.depth++
	for i, yv := range node.Values {
		if i > 0 {
			if err := writeColored(w, ",", es, SepColor); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(yv, w, es); err != nil {
			return err
		}
		es.colorType = node.Type
	}
	es.depth--
	if len(node.Values) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeColored(w, "]", es, SepColor)
}

// formatNumber renders a number leaf. Non-finite floats use the bare NaN
// and Infinity literals the reference emitter produces; strict JSON has no
// spelling for them at all, so compatibility wins.
func formatNumber(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 == nil {
		return "0"
	}
	f := *node.Float64
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	res := strconv.FormatFloat(f, 'g', -1, 64)
	// distinguish floats from ints the way other JSON emitters do
	if !strings.ContainsAny(res, ".eE") {
		res += ".0"
	}
	return res
}

func keySep(es *EncState) string {
	if es.wire {
		return ":"
	}
	return ": "
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	if es.col == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, "\n"+indentString); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, s string, es *EncState, attr ColorAttr) error {
	if es.Color != nil {
		s = es.Color(es.colorType, attr, s)
	}
	es.col += len(s)
	return writeString(w, s)
}

func writeQuoted(w io.Writer, s string, es *EncState, attr ColorAttr) error {
	q, err := jsontext.AppendQuote(nil, s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return writeColored(w, string(q), es, attr)
}
