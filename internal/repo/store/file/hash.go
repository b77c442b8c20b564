package file

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"github.com/keshon/gitnot/internal/fsio"
)

const readBufSize = 32 * 1024 // streaming read buffer

// HashFile returns the xxh3-128 digest of the file at the given absolute
// path, read in fixed-size chunks. Unreadable files get a deterministic
// sentinel derived from the filename so repeated runs agree on them.
func HashFile(path string) string {
	f, err := fsio.Open(path)
	if err != nil {
		return sentinelDigest(path)
	}
	defer f.Close()

	h := xxh3.New()
	buf := make([]byte, readBufSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return sentinelDigest(path)
		}
	}

	return fmt.Sprintf("%x", h.Sum128().Bytes())
}

func sentinelDigest(path string) string {
	return "unreadable-" + filepath.Base(path)
}

// HashAll hashes every tracked relative path against the working tree.
func (fc *FileContext) HashAll(rels []string) map[string]string {
	hashes := make(map[string]string, len(rels))
	for _, rel := range rels {
		hashes[rel] = HashFile(fc.Paths.WorkingFile(rel))
	}
	return hashes
}
