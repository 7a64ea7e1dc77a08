package parse

type parseOpts struct {
	reType bool
}

type ParseOption func(*parseOpts)

// ReType applies the ir.Retype coercion pass to the tree after building it,
// turning string leaves into bools, nulls, numbers and tuples.
func ReType(v bool) ParseOption {
	return func(o *parseOpts) { o.reType = v }
}
