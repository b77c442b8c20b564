package file

import (
	"github.com/keshon/gitnot/internal/config"
)

// FileContext wraps working-tree level operations: classification, hashing
// and the persisted hash index.
type FileContext struct {
	Paths  config.Paths
	Config config.Config
}

func NewFileContext(paths config.Paths, cfg config.Config) *FileContext {
	return &FileContext{Paths: paths, Config: cfg}
}
