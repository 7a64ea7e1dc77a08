// Package eval filters savefile sequences with expressions.
//
// Duplicate-key merging turns repeated nodes such as VESSEL into
// sequences; Select narrows such a sequence to the elements matching an
// expr-lang expression evaluated against each element's fields:
//
//	vessels, _ := treepath.Resolve(root, treepath.FlightState, "VESSEL/ALL")
//	docked, err := eval.Select(vessels, `sit == "DOCKED"`)
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/ksptools/sfs-format/go-sfs/ir"
)

// Select returns a new sequence holding the elements of seq for which the
// program src yields true. Element fields are visible as variables; fields
// absent from an element evaluate as nil rather than failing.
func Select(seq *ir.Node, src string) (*ir.Node, error) {
	if seq.Type != ir.ArrayType {
		return nil, fmt.Errorf("select applies to sequences, got %s", seq.Type)
	}
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("bad select expression %q: %w", src, err)
	}
	kept := []*ir.Node{}
	for i, elt := range seq.Values {
		env, ok := ir.ToAny(elt).(map[string]any)
		if !ok {
			env = map[string]any{}
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("select %q on element %d: %w", src, i, err)
		}
		keep, ok := res.(bool)
		if !ok {
			return nil, fmt.Errorf("select %q returned %T on element %d, want bool", src, res, i)
		}
		if keep {
			kept = append(kept, elt.Clone())
		}
	}
	return ir.FromSlice(kept), nil
}
