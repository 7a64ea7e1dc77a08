package ir

import (
	"math"

	"github.com/goccy/go-yaml"
)

// ToAny converts a node to plain Go values: objects become map[string]any,
// arrays and tuples []any, leaves their scalar value. Key order is lost;
// use ToMapSlice when order matters.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i].String] = ToAny(y.Values[i])
		}
		return res
	case ArrayType, TupleType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case StringType:
		return y.String
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return math.NaN()
	default:
		return nil
	}
}

// ToMapSlice is like ToAny but renders objects as yaml.MapSlice so encoders
// that understand it (goccy/go-yaml) keep the savefile's key order.
func ToMapSlice(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(y.Fields))
		for i := range y.Fields {
			res[i] = yaml.MapItem{
				Key:   y.Fields[i].String,
				Value: ToMapSlice(y.Values[i]),
			}
		}
		return res
	case ArrayType, TupleType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToMapSlice(yv)
		}
		return res
	default:
		return ToAny(y)
	}
}
