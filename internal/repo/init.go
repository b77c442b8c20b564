package repo

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/gitnot/internal/config"
	"github.com/keshon/gitnot/internal/fsio"
	"github.com/keshon/gitnot/internal/repo/store/file"
)

// Init sets up the reserved directory and records the current working tree
// as the v0.1 baseline: snapshot copies, seeded changelogs, hash index and
// version file. Re-running it rebuilds the baseline. Files that cannot be
// copied are skipped with a warning and left untracked.
// Returns the number of tracked files.
func (r *Repository) Init() (int, error) {
	for _, dir := range []string{
		r.Paths.SnapshotRoot(),
		r.Paths.ChangelogRoot(),
		r.Paths.DeletedRoot(),
	} {
		if err := fsio.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	// init is the one place the config is written back
	r.Config = config.Default()
	r.Files = file.NewFileContext(r.Paths, r.Config)
	if err := r.Config.Save(r.Paths.ConfigPath()); err != nil {
		log.Warnf("could not save config: %v", err)
	}

	rels, err := r.Files.ScanWorkingTree()
	if err != nil {
		return 0, fmt.Errorf("scan working tree: %w", err)
	}

	hashes := make(map[string]string, len(rels))
	for _, rel := range rels {
		if err := r.Snapshots.WriteFile(rel); err != nil {
			log.Warnf("could not process %s: %v", rel, err)
			continue
		}
		hashes[rel] = file.HashFile(r.Paths.WorkingFile(rel))
		if err := r.Logs.Seed(rel); err != nil {
			log.Warnf("could not seed changelog for %s: %v", rel, err)
		}
	}

	if err := r.Files.SaveIndex(hashes); err != nil {
		return 0, err
	}
	if err := r.Meta.WriteVersion(0.1); err != nil {
		return 0, err
	}
	return len(hashes), nil
}
