// Package debug holds env-var controlled debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Token   bool
	Parse   bool
	Grammar bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("RAWS_DEBUG_TOKEN")
	d.Parse = boolEnv("RAWS_DEBUG_PARSE")
	d.Grammar = boolEnv("RAWS_DEBUG_GRAMMAR")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Grammar() bool {
	return d.Grammar
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
