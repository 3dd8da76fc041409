package datatree

import (
	"github.com/pmezard/go-difflib/difflib"
)

// DiffConfigs renders a unified diff between two configuration snapshots.
// Both trees are flattened without default values; mixing policies would
// produce spurious hunks from default-value noise.
func DiffConfigs(running, candidate *Tree) (string, error) {
	a := running.Flatten(RootID, false)
	b := candidate.Flatten(RootID, false)

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "running configuration",
		ToFile:   "candidate configuration",
		Context:  9,
	})
}
