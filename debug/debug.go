package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Encode bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("SJ_DEBUG_TOKENS")
	d.Parse = boolEnv("SJ_DEBUG_PARSE")
	d.Encode = boolEnv("SJ_DEBUG_ENCODE")
	d.Eval = boolEnv("SJ_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Eval() bool {
	return d.Eval
}
