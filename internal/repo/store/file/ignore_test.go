package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreMatch(t *testing.T) {
	cases := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		// directory-scoped rules match the segment at any depth
		{"dir rule top level", []string{"build/*"}, "build/out.txt", true},
		{"dir rule nested", []string{"build/*"}, "src/build/deep/out.txt", true},
		{"dir rule segment only", []string{"build/*"}, "builds/out.txt", false},
		{"dir rule file named build", []string{"node_modules/*"}, "docs/node_modules/a.js", true},

		// exact filename rules match the basename only
		{"exact basename", []string{".DS_Store"}, ".DS_Store", true},
		{"exact nested", []string{".DS_Store"}, "sub/.DS_Store", true},
		{"exact no substring", []string{".DS_Store"}, "my.DS_Store.txt", false},

		// glob rules without a slash match the filename
		{"glob tmp", []string{"*.tmp"}, "scratch.tmp", true},
		{"glob tmp nested", []string{"*.tmp"}, "a/b/scratch.tmp", true},
		{"glob miss", []string{"*.tmp"}, "scratch.txt", false},
		{"glob question mark", []string{"file?.txt"}, "file1.txt", true},
		{"glob question mark two chars", []string{"file?.txt"}, "file12.txt", false},

		// glob rules with a slash match a trailing run of path segments
		{"path glob", []string{"docs/*.md"}, "docs/readme.md", true},
		{"path glob nested", []string{"docs/*.md"}, "x/docs/readme.md", true},
		{"path glob nested deep", []string{"docs/*.md"}, "a/b/docs/notes.md", true},
		{"path glob tail mismatch", []string{"docs/*.md"}, "x/docs/readme.txt", false},
		{"path glob wrong depth", []string{"docs/*.md"}, "docs/sub/readme.md", false},
		{"doublestar", []string{"docs/**"}, "docs/sub/deep/readme.md", true},
		{"doublestar middle", []string{"docs/**/readme.md"}, "docs/a/b/readme.md", true},

		{"no patterns", nil, "anything.txt", false},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			m := NewIgnore(tt.patterns)
			assert.Equal(t, tt.want, m.Match(tt.path), "patterns %v path %s", tt.patterns, tt.path)
		})
	}
}

func TestIgnoreOrderedFirstMatch(t *testing.T) {
	// evaluation is ordered; any matching rule excludes
	m := NewIgnore([]string{"*.keep", "build/*", "*.tmp"})
	assert.True(t, m.Match("build/a.txt"))
	assert.True(t, m.Match("x.tmp"))
	assert.False(t, m.Match("x.txt"))
}

func TestIgnoreBlankPatternsSkipped(t *testing.T) {
	m := NewIgnore([]string{"", "  ", "*.bak"})
	assert.True(t, m.Match("old.bak"))
	assert.False(t, m.Match("old.txt"))
}
