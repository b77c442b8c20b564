// Package delta classifies the working tree against the last committed
// hash index. The same classification backs both the status query and the
// commit path so the two cannot drift.
package delta

import (
	"github.com/keshon/gitnot/internal/util"
)

// Delta partitions tracked paths into change categories. Each path appears
// in exactly one slice; all slices are sorted.
type Delta struct {
	Added     []string
	Modified  []string
	Deleted   []string
	Unchanged []string
}

// Classify compares the last committed index against the freshly computed
// hash map. Pure function of its inputs.
func Classify(old, current map[string]string) Delta {
	var d Delta

	for _, rel := range util.SortedKeys(current) {
		oldDigest, known := old[rel]
		switch {
		case !known:
			d.Added = append(d.Added, rel)
		case oldDigest != current[rel]:
			d.Modified = append(d.Modified, rel)
		default:
			d.Unchanged = append(d.Unchanged, rel)
		}
	}

	for _, rel := range util.SortedKeys(old) {
		if _, present := current[rel]; !present {
			d.Deleted = append(d.Deleted, rel)
		}
	}

	return d
}

// Empty reports whether no additions, modifications or deletions were found.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Modified) == 0 && len(d.Deleted) == 0
}
