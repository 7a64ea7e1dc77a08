// Package format enumerates the output encodings supported when rendering
// a parsed savefile tree.
//
// The source side has exactly one format, the savefile node notation handled
// by the translate package, so only output formats are enumerated here.
//
// # Related Packages
//
//   - github.com/ksptools/sfs-format/go-sfs/translate - node notation to JSON text
//   - github.com/ksptools/sfs-format/go-sfs/encode - encode trees to text
package format
