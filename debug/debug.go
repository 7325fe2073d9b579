// Package debug holds env-gated diagnostics. With RELIC_DEBUG_TOKENS set,
// the top-level operations dump the token streams they produce to stderr
// as YAML, one document per operation.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("RELIC_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tokens reports whether token-stream tracing is enabled
// (RELIC_DEBUG_TOKENS). The describe/load order check has its own toggle,
// RELIC_DEBUG_ORDER, read by the walk package.
func Tokens() bool {
	return d.Tokens
}
