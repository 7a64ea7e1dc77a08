package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ReType reinterprets a string leaf as a richer type. Rules are tried in a
// fixed order, first match wins:
//
//  1. case-insensitive "true"/"false" becomes a bool
//  2. case-insensitive "none" becomes null
//  3. the exact text "Infinity" stays a string (savefiles use it as a
//     sentinel, so it is not folded into a float infinity)
//  4. 3 or 4 comma-separated float components become a tuple; any other
//     arity or a non-numeric component falls through whole
//  5. an integer becomes an int
//  6. a float (including "NaN") becomes a float
//  7. anything else stays a string
//
// Non-string nodes are untouched, so ReType is idempotent.
func (y *Node) ReType() {
	if y.Type != StringType {
		return
	}
	v := y.String
	switch strings.ToLower(v) {
	case "true":
		y.Type = BoolType
		y.Bool = true
		y.String = ""
		return
	case "false":
		y.Type = BoolType
		y.Bool = false
		y.String = ""
		return
	case "none":
		y.Type = NullType
		y.String = ""
		return
	}
	if v == "Infinity" {
		return
	}
	if fs, ok := tupleComponents(v); ok {
		tup := FromTuple(fs)
		y.Type = TupleType
		y.Values = tup.Values
		for i, yv := range y.Values {
			yv.Parent = y
			yv.ParentIndex = i
		}
		y.String = ""
		return
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		y.Type = NumberType
		y.Int64 = &i
		y.String = ""
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err == nil {
		y.Type = NumberType
		y.Float64 = &f
		y.String = ""
	}
}

func tupleComponents(v string) ([]float64, bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, false
	}
	fs := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, false
		}
		fs[i] = f
	}
	return fs, true
}

// Retype applies ReType to every string leaf under node, in place. Mapping
// key order and sequence element order are preserved; Visit only descends
// Values, so object keys are never retyped. A leaf that becomes a tuple is
// not descended into.
func Retype(node *Node) {
	node.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if y.Type == StringType {
			y.ReType()
			return false, nil
		}
		return !y.Type.IsLeaf(), nil
	})
}

// ToString renders a typed leaf back to its savefile string form. Only
// bools, numbers and strings have a defined reverse mapping; tuples,
// sequences and objects report ErrNotSupported.
func (y *Node) ToString() (string, error) {
	switch y.Type {
	case StringType:
		return y.String, nil
	case BoolType:
		if y.Bool {
			return "True", nil
		}
		return "False", nil
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10), nil
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64), nil
		}
		return "", fmt.Errorf("%w: number with no value", ErrNotSupported)
	default:
		return "", fmt.Errorf("%w: cannot stringify %s", ErrNotSupported, y.Type)
	}
}
