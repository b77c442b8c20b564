// Package meta persists the repository's version counter.
//
// The counter is bumped tentatively before delta detection and rolled back
// when a commit turns out to be a no-op. The counter file is not part of
// the snapshot swap transaction, so a crash between bump and rollback can
// leave the stored version ahead of the committed state. Known limitation.
package meta

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keshon/gitnot/internal/config"
	"github.com/keshon/gitnot/internal/fsio"
)

// Step is the version increment applied per commit.
const Step = 0.1

// MetaContext reads and writes repository metadata under the reserved dir.
type MetaContext struct {
	Paths config.Paths
}

func NewMetaContext(paths config.Paths) *MetaContext {
	return &MetaContext{Paths: paths}
}

// ReadVersion returns the persisted version. Absent or unparseable files
// read as 0.0.
func (mc *MetaContext) ReadVersion() float64 {
	data, err := fsio.ReadFile(mc.Paths.VersionPath())
	if err != nil {
		return 0.0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0.0
	}
	return v
}

// WriteVersion persists the version as a one-decimal text value.
func (mc *MetaContext) WriteVersion(v float64) error {
	if err := fsio.MkdirAll(mc.Paths.RepoRoot, 0o755); err != nil {
		return fmt.Errorf("create repo dir: %w", err)
	}
	data := []byte(fmt.Sprintf("%.1f", v))
	if err := fsio.WriteFile(mc.Paths.VersionPath(), data, 0o644); err != nil {
		return fmt.Errorf("write version: %w", err)
	}
	return nil
}

// BumpVersion tentatively advances the counter by one step and returns the
// new version.
func (mc *MetaContext) BumpVersion() (float64, error) {
	v := mc.ReadVersion() + Step
	if err := mc.WriteVersion(v); err != nil {
		return v, err
	}
	return v, nil
}

// RollbackVersion reverts a tentative bump.
func (mc *MetaContext) RollbackVersion(bumped float64) error {
	return mc.WriteVersion(bumped - Step)
}
