package file

import (
	"path"
	"path/filepath"
	"strings"
)

type ruleKind int

const (
	ruleDir ruleKind = iota
	ruleGlob
	ruleExact
)

type rule struct {
	value string
	kind  ruleKind
}

// Ignore evaluates ignore patterns in configured order; the first matching
// rule excludes the path.
type Ignore struct {
	rules []rule
}

// NewIgnore compiles patterns into rules. Three forms are supported:
// "name/*" excludes any path with a "name" segment, patterns containing
// wildcards are globs, anything else is an exact filename match.
func NewIgnore(patterns []string) *Ignore {
	m := &Ignore{}
	for _, raw := range patterns {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		switch {
		case strings.HasSuffix(p, "/*"):
			m.rules = append(m.rules, rule{value: strings.TrimSuffix(p, "/*"), kind: ruleDir})
		case strings.ContainsAny(p, "*?["):
			m.rules = append(m.rules, rule{value: filepath.ToSlash(p), kind: ruleGlob})
		default:
			m.rules = append(m.rules, rule{value: p, kind: ruleExact})
		}
	}
	return m
}

// Match reports whether the slash-separated relative path is excluded.
func (m *Ignore) Match(rel string) bool {
	rel = path.Clean(filepath.ToSlash(rel))
	parts := strings.Split(rel, "/")
	base := parts[len(parts)-1]

	for _, r := range m.rules {
		switch r.kind {
		case ruleDir:
			for _, seg := range parts {
				if seg == r.value {
					return true
				}
			}
		case ruleGlob:
			if matchGlob(r.value, rel, base) {
				return true
			}
		case ruleExact:
			if base == r.value {
				return true
			}
		}
	}
	return false
}

// matchGlob matches a bare pattern against the filename and a pathful
// pattern segment-wise against any trailing run of path segments, so
// "docs/*.md" also excludes "x/docs/readme.md". "**" spans directories.
func matchGlob(pattern, rel, base string) bool {
	if !strings.Contains(pattern, "/") {
		ok, _ := path.Match(pattern, base)
		return ok
	}
	pats := strings.Split(pattern, "/")
	parts := strings.Split(rel, "/")
	for i := range parts {
		if matchSegments(pats, parts[i:]) {
			return true
		}
	}
	return false
}

func matchSegments(pats, parts []string) bool {
	for len(pats) > 0 {
		p := pats[0]
		pats = pats[1:]

		if p == "**" {
			if len(pats) == 0 {
				return true // trailing ** matches anything
			}
			for i := 0; i <= len(parts); i++ {
				if matchSegments(pats, parts[i:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}

		ok, _ := path.Match(p, parts[0])
		if !ok {
			return false
		}

		parts = parts[1:]
	}

	return len(parts) == 0
}
