package file

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/gitnot/internal/config"
)

// ScanWorkingTree returns the slash-separated relative paths of all
// trackable files under the root: extension in the configured allow-set,
// outside the reserved metadata directory, and not matched by any ignore
// rule. Unreadable subtrees are skipped with a warning, never fatal.
func (fc *FileContext) ScanWorkingTree() ([]string, error) {
	exts := fc.Config.ExtensionSet()
	matcher := NewIgnore(fc.Config.IgnorePatterns)
	exe, _ := os.Executable()

	var rels []string
	err := filepath.WalkDir(fc.Paths.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warnf("skipping %s: %v", p, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(fc.Paths.Root, p)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == config.RepoDir || matcher.Match(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !exts[strings.ToLower(filepath.Ext(rel))] {
			return nil
		}
		if matcher.Match(rel) || p == exe {
			return nil
		}

		rels = append(rels, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(rels)
	return rels, nil
}
