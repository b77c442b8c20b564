package config

import (
	"encoding/json"
	"strings"

	"github.com/keshon/gitnot/internal/fsio"
)

const (
	// RepoDir is the reserved metadata directory created in the tracked root.
	RepoDir = ".gitnot"

	SnapshotDir   = "snapshot"
	ChangelogsDir = "changelogs"
	DeletedDir    = "deleted"

	HashesFile  = "hashes.json"
	VersionFile = "version.txt"
	ConfigFile  = "config.json"
)

// Config holds the per-invocation tracking policy.
type Config struct {
	Extensions     []string `json:"extensions"`
	IgnorePatterns []string `json:"ignore_patterns"`
}

// Default returns the built-in tracking policy.
func Default() Config {
	return Config{
		Extensions: []string{
			".txt", ".md", ".csv", ".log", ".py", ".js", ".sh",
			".html", ".css", ".c", ".java", ".json", ".yaml",
			".yml", ".ini", ".toml", ".xml", ".rtf",
		},
		IgnorePatterns: []string{"*.tmp", "*.bak"},
	}
}

// Load reads config.json from path. An absent or corrupt file yields the
// defaults; the file is never written back here.
func Load(path string) Config {
	data, err := fsio.ReadFile(path)
	if err != nil {
		return Default()
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = Default().Extensions
	}
	return cfg
}

// Save writes the config as indented JSON.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return fsio.WriteFile(path, data, 0o644)
}

// ExtensionSet returns the allowed extensions as a lowercased lookup set.
func (c Config) ExtensionSet() map[string]bool {
	set := make(map[string]bool, len(c.Extensions))
	for _, ext := range c.Extensions {
		set[strings.ToLower(ext)] = true
	}
	return set
}
