// Package sfs converts game savefiles from their brace-delimited node
// notation into JSON-compatible trees.
//
// The engine is two passes consumed in sequence: the translate package
// rewrites the node notation into JSON text, and the parse package builds
// an ir.Node tree from that text, merging consecutive repeated keys into
// sequences. Parse on this package composes the two.
package sfs

import (
	"fmt"
	"io"

	"github.com/ksptools/sfs-format/go-sfs/debug"
	"github.com/ksptools/sfs-format/go-sfs/ir"
	"github.com/ksptools/sfs-format/go-sfs/parse"
	"github.com/ksptools/sfs-format/go-sfs/translate"
)

type engineOpts struct {
	depth        int
	reType       bool
	intermediate io.Writer
}

type Option func(*engineOpts)

// MaxDepth overrides the translator's maximum expected nesting depth
// (default translate.DefaultDepth).
func MaxDepth(n int) Option {
	return func(o *engineOpts) { o.depth = n }
}

// ReType coerces string leaves to typed values after parsing.
func ReType(v bool) Option {
	return func(o *engineOpts) { o.reType = v }
}

// Intermediate sends the post-translation, pre-parse JSON text to w
// verbatim, for diagnostic storage. The text is written whether or not the
// parse succeeds.
func Intermediate(w io.Writer) Option {
	return func(o *engineOpts) { o.intermediate = w }
}

// Parse converts one complete savefile document into a tree. On failure no
// partial tree is returned; the error wraps parse.ErrMalformedInput.
func Parse(d []byte, opts ...Option) (*ir.Node, error) {
	eOpts := &engineOpts{depth: translate.DefaultDepth}
	for _, f := range opts {
		f(eOpts)
	}
	jt := translate.Translate(d, translate.Depth(eOpts.depth))
	if debug.Translate() {
		debug.Logf("translated %d bytes of notation into %d bytes of JSON text\n",
			len(d), len(jt))
	}
	if eOpts.intermediate != nil {
		if _, err := eOpts.intermediate.Write(jt); err != nil {
			return nil, fmt.Errorf("writing intermediate text: %w", err)
		}
	}
	return parse.Parse(jt, parse.ReType(eOpts.reType))
}
