// Package translate rewrites savefile node notation into JSON text.
//
// The node notation is line oriented and brace delimited:
//
//	NODE
//	{
//	KEY = VALUE
//	CHILD
//	{
//	OTHER = 1
//	}
//	}
//
// Translate turns this into JSON text by a fixed sequence of textual
// substitutions over the whole document. The strategy is deliberately
// compatible with existing tooling: node names become object keys, KEY =
// VALUE lines become string pairs taken verbatim, and a final pass joins
// runs of closing braces produced by dedenting nested nodes. Values
// containing quotes or backslashes are a known limitation of the notation
// and are not escaped.
//
// Translate is a pure text transform and never fails; text that cannot be
// normalized into valid JSON surfaces as a parse error downstream.
package translate

import "bytes"

// DefaultDepth bounds how many levels of simultaneous dedent the brace
// normalization pass can fix. Documents nested deeper than the depth in
// effect are not correctly normalized and fail at the parse step.
const DefaultDepth = 16

type transOpts struct {
	depth int
}

type Option func(*transOpts)

// Depth overrides the maximum expected nesting depth (default DefaultDepth).
func Depth(n int) Option {
	return func(o *transOpts) {
		if n > 0 {
			o.depth = n
		}
	}
}

// Translate converts one complete savefile document into JSON text.
func Translate(d []byte, opts ...Option) []byte {
	tOpts := &transOpts{depth: DefaultDepth}
	for _, f := range opts {
		f(tOpts)
	}

	d = stripLines(d)

	// node names become keys: "...}\nNAME\n{..." -> "...},"NAME":{..."
	d = bytes.ReplaceAll(d, []byte("}\n"), []byte("}"))
	d = bytes.ReplaceAll(d, []byte("\n{"), []byte(":{"))
	d = bytes.ReplaceAll(d, []byte("{\n}"), []byte("{}\n"))

	// assignments become string pairs; blank values normalize to ""
	d = bytes.ReplaceAll(d, []byte(" =\n"), []byte(" = \n"))
	d = bytes.ReplaceAll(d, []byte(" = "), []byte(`":"`))
	d = bytes.ReplaceAll(d, []byte("\n"), []byte("\",\n\""))
	d = bytes.ReplaceAll(d, []byte(`:{",`), []byte(`":{`))
	d = bytes.ReplaceAll(d, []byte(`:{}"`), []byte(`":{}`))

	// runs of closing braces from dedenting nodes were quoted like values
	// by the line substitutions above; move them back out, deepest first
	for i := tOpts.depth; i >= 1; i-- {
		braces := bytes.Repeat([]byte{'}'}, i)
		from := make([]byte, 0, i+3)
		from = append(from, ',', '\n', '"')
		from = append(from, braces...)
		to := make([]byte, 0, i+3)
		to = append(to, braces...)
		to = append(to, ',', '\n', '"')
		d = bytes.ReplaceAll(d, from, to)
	}

	// open the implicit outer object and close it, trimming the
	// 3-character tail left by the line substitutions
	if n := len(d); n >= 3 {
		d = d[:n-3]
	} else {
		d = nil
	}
	res := make([]byte, 0, len(d)+3)
	res = append(res, '{', '"')
	res = append(res, d...)
	res = append(res, '}')
	return res
}

// stripLines removes tab characters and leading/trailing horizontal
// whitespace from every line.
func stripLines(d []byte) []byte {
	lines := bytes.Split(d, []byte{'\n'})
	for i, ln := range lines {
		ln = bytes.ReplaceAll(ln, []byte{'\t'}, nil)
		lines[i] = bytes.Trim(ln, " \r")
	}
	return bytes.Join(lines, []byte{'\n'})
}
