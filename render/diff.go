package render

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/relic-format/go-relic/walk"
)

// Diff returns a readable character diff between the renders of a and b,
// or "" when they render identically. Intended for test failure output in
// snapshot-style comparisons.
func Diff(a, b walk.Describer, opts ...Option) string {
	return DiffText(Render(a, opts...), Render(b, opts...))
}

// DiffText diffs two already-rendered trees.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}
