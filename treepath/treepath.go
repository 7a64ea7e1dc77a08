// Package treepath resolves slash-delimited references into savefile trees.
//
// A reference like "VESSEL/0/name" is resolved segment by segment: a
// segment that parses as an integer indexes a sequence produced by
// duplicate-key merging, anything else is an object key. References are
// relative to a Branch, a fixed prefix naming a subsection of the document,
// and the literal segment "ALL" returns the node at the branch itself.
package treepath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ksptools/sfs-format/go-sfs/debug"
	"github.com/ksptools/sfs-format/go-sfs/ir"
)

// ErrNotFound reports a reference step that does not exist in the tree.
// Lookups are case sensitive; a failed step surfaces the missing key or
// index so the caller can hint at spelling.
var ErrNotFound = errors.New("path not found")

// Branch is a root-relative prefix under which references resolve.
type Branch []string

// The three recognized branches of a savefile document.
var (
	Game        = Branch{"GAME"}
	Parameters  = Branch{"GAME", "PARAMETERS"}
	FlightState = Branch{"GAME", "FLIGHTSTATE"}
)

func (b Branch) String() string {
	return strings.Join(b, "/")
}

// Step is one resolution step: an object key or a sequence index.
type Step struct {
	Key   string
	Index *int
}

func (s Step) String() string {
	if s.Index != nil {
		return strconv.Itoa(*s.Index)
	}
	return s.Key
}

// Split breaks a reference into steps under branch. Trailing slashes are
// ignored. If the last segment is the literal "ALL" the branch alone is
// returned, whatever precedes it.
func Split(ref string, branch Branch) []Step {
	segs := strings.Split(strings.TrimRight(ref, "/"), "/")
	steps := make([]Step, 0, len(branch)+len(segs))
	for _, key := range branch {
		steps = append(steps, Step{Key: key})
	}
	if segs[len(segs)-1] == "ALL" {
		return steps
	}
	for _, seg := range segs {
		if i, err := strconv.Atoi(seg); err == nil {
			steps = append(steps, Step{Index: &i})
			continue
		}
		steps = append(steps, Step{Key: seg})
	}
	return steps
}

// Resolve walks ref under branch starting at root and returns the single
// node it names, or ErrNotFound if any step is absent or applied to a node
// of the wrong shape.
func Resolve(root *ir.Node, branch Branch, ref string) (*ir.Node, error) {
	res := root
	for _, step := range Split(ref, branch) {
		next, err := walk(res, step)
		if err != nil {
			return nil, err
		}
		if debug.Path() {
			debug.Logf("step %s -> %s node\n", step, next.Type)
		}
		res = next
	}
	return res, nil
}

func walk(y *ir.Node, step Step) (*ir.Node, error) {
	if step.Index != nil {
		if y.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: index %d into %s", ErrNotFound, *step.Index, y.Type)
		}
		i := *step.Index
		if i < 0 || i >= len(y.Values) {
			return nil, fmt.Errorf("%w: index %d out of range (len %d)", ErrNotFound, i, len(y.Values))
		}
		return y.Values[i], nil
	}
	if y.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: key %q into %s", ErrNotFound, step.Key, y.Type)
	}
	if res := ir.Get(y, step.Key); res != nil {
		return res, nil
	}
	return nil, fmt.Errorf("%w: no key %q", ErrNotFound, step.Key)
}
