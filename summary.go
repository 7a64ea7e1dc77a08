package sfs

import (
	"strings"

	"github.com/ksptools/sfs-format/go-sfs/ir"
	"github.com/ksptools/sfs-format/go-sfs/treepath"
)

// Summary holds the headline fields of a savefile.
type Summary struct {
	Title    string
	SaveTime string
	Version  string
}

// Summarize extracts the savefile title, save timestamp and game version
// from a parsed tree. full selects the long form of the version string.
// The timestamp is truncated to minute precision with the ISO "T"
// separator replaced by a space.
func Summarize(root *ir.Node, full bool) (*Summary, error) {
	title, err := gameField(root, "Title")
	if err != nil {
		return nil, err
	}
	stamp, err := gameField(root, "persistentTimestamp")
	if err != nil {
		return nil, err
	}
	if len(stamp) > 16 {
		stamp = stamp[:16]
	}
	stamp = strings.Replace(stamp, "T", " ", 1)
	versionKey := "version"
	if full {
		versionKey = "versionFull"
	}
	version, err := gameField(root, versionKey)
	if err != nil {
		return nil, err
	}
	return &Summary{Title: title, SaveTime: stamp, Version: version}, nil
}

func gameField(root *ir.Node, key string) (string, error) {
	y, err := treepath.Resolve(root, treepath.Game, key)
	if err != nil {
		return "", err
	}
	return y.ToString()
}
