package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAbsentGivesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), ConfigFile))
	assert.Equal(t, Default(), cfg)
}

func TestLoadCorruptGivesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(p, []byte("{broken"), 0o644))

	cfg := Load(p)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), ConfigFile)
	cfg := Config{
		Extensions:     []string{".go", ".txt"},
		IgnorePatterns: []string{"vendor/*", "*.bak"},
	}
	require.NoError(t, cfg.Save(p))

	loaded := Load(p)
	assert.Equal(t, cfg, loaded)
}

func TestExtensionSetLowercases(t *testing.T) {
	cfg := Config{Extensions: []string{".TXT", ".Md"}}
	set := cfg.ExtensionSet()
	assert.True(t, set[".txt"])
	assert.True(t, set[".md"])
	assert.False(t, set[".TXT"])
}

func TestPathsLayout(t *testing.T) {
	p := NewPaths("/work")
	assert.Equal(t, filepath.Join("/work", RepoDir), p.RepoRoot)
	assert.Equal(t, filepath.Join(p.RepoRoot, SnapshotDir, "sub", "a.txt"), p.SnapshotFile("sub/a.txt"))
	assert.Equal(t, filepath.Join(p.RepoRoot, ChangelogsDir, "sub", "a.txt.log"), p.ChangelogFile("sub/a.txt"))
	assert.Equal(t, filepath.Join(p.RepoRoot, DeletedDir, "a.txt"), p.DeletedFile("a.txt"))
	assert.Equal(t, filepath.Join("/work", "sub", "a.txt"), p.WorkingFile("sub/a.txt"))
}

func TestInitializedReflectsDir(t *testing.T) {
	root := t.TempDir()
	p := NewPaths(root)
	assert.False(t, p.Initialized())

	require.NoError(t, os.MkdirAll(p.RepoRoot, 0o755))
	assert.True(t, p.Initialized())
}
