package file

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/gitnot/internal/fsio"
	"github.com/keshon/gitnot/internal/util"
)

// LoadIndex reads the persisted hash index (relative path -> digest).
// An absent or corrupt index is treated as empty.
func (fc *FileContext) LoadIndex() map[string]string {
	path := fc.Paths.HashesPath()
	if !fsio.Exists(path) {
		return map[string]string{}
	}
	var index map[string]string
	if err := util.ReadJSON(path, &index); err != nil {
		log.Warnf("corrupt hash index %s: %v", path, err)
		return map[string]string{}
	}
	if index == nil {
		index = map[string]string{}
	}
	return index
}

// SaveIndex replaces the persisted hash index wholesale.
func (fc *FileContext) SaveIndex(index map[string]string) error {
	if err := util.WriteJSON(fc.Paths.HashesPath(), index); err != nil {
		return fmt.Errorf("save hash index: %w", err)
	}
	return nil
}
