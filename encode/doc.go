// Package encode renders savefile trees as JSON or YAML text.
//
// # Usage
//
//	// Pretty JSON with a 2-space indent
//	err := encode.Encode(node, os.Stdout)
//
//	// Compact JSON
//	err := encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//
//	// YAML, key order preserved
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/ksptools/sfs-format/go-sfs/ir - tree representation
//   - github.com/ksptools/sfs-format/go-sfs/parse - parse JSON text to trees
package encode
