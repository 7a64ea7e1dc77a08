package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Translate bool
	Parse     bool
	Retype    bool
	Path      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Translate = boolEnv("SFS_DEBUG_TRANSLATE")
	d.Parse = boolEnv("SFS_DEBUG_PARSE")
	d.Retype = boolEnv("SFS_DEBUG_RETYPE")
	d.Path = boolEnv("SFS_DEBUG_PATH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Translate() bool {
	return d.Translate
}
func Parse() bool {
	return d.Parse
}
func Retype() bool {
	return d.Retype
}
func Path() bool {
	return d.Path
}
