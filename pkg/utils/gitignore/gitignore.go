// Package gitignore provides parsing and matching of gitignore-style patterns.
package gitignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// GitIgnore represents a collection of gitignore patterns
type GitIgnore struct {
	patterns []string
}

// Load reads and parses a single ignore file. A missing file yields an
// empty matcher, not an error.
func Load(path string) (*GitIgnore, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GitIgnore{patterns: make([]string, 0)}, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &GitIgnore{patterns: patterns}, nil
}

// LoadRepo builds a matcher from every ignore source git itself consults
// for a repository root: the root .gitignore, .git/info/exclude, and the
// user's global ignore file. Sources that are missing or unreadable are
// skipped.
func LoadRepo(root string) *GitIgnore {
	gi := &GitIgnore{patterns: make([]string, 0)}

	sources := []string{
		filepath.Join(root, ".gitignore"),
		filepath.Join(root, ".git", "info", "exclude"),
	}
	if cfg, err := os.UserConfigDir(); err == nil {
		sources = append(sources, filepath.Join(cfg, "git", "ignore"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		sources = append(sources, filepath.Join(home, ".gitignore_global"))
	}

	for _, src := range sources {
		loaded, err := Load(src)
		if err != nil {
			continue
		}
		gi.patterns = append(gi.patterns, loaded.patterns...)
	}
	return gi
}

// ParseLines parses gitignore patterns from a slice of strings
func ParseLines(lines []string) *GitIgnore {
	var patterns []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return &GitIgnore{patterns: patterns}
}

// Patterns returns all loaded patterns
func (gi *GitIgnore) Patterns() []string {
	return gi.patterns
}

// IsIgnored checks if a file or directory path should be ignored.
// Paths are matched relative to the repository root with / separators.
func (gi *GitIgnore) IsIgnored(path string) bool {
	normalized := filepath.ToSlash(path)
	for _, pattern := range gi.patterns {
		if matchPattern(normalized, pattern) {
			return true
		}
	}
	return false
}

// matchPattern performs pattern matching for a single gitignore rule.
// It covers the common cases: root-anchored patterns, directory patterns
// and * wildcards. Negation rules are not supported and never match.
func matchPattern(path, pattern string) bool {
	if strings.HasPrefix(pattern, "!") {
		return false
	}

	rooted := strings.HasPrefix(pattern, "/")
	if rooted {
		pattern = pattern[1:]
	}

	// Directory pattern: match any path segment (only the leading one when rooted)
	if strings.HasSuffix(pattern, "/") {
		pattern = strings.TrimSuffix(pattern, "/")
		parts := strings.Split(path, "/")
		if rooted {
			return len(parts) > 0 && segmentMatch(parts[0], pattern)
		}
		for _, part := range parts {
			if segmentMatch(part, pattern) {
				return true
			}
		}
		return false
	}

	if rooted {
		return matchFromStart(path, pattern)
	}
	return matchAnywhere(path, pattern)
}

// matchFromStart matches a pattern against the beginning of the path,
// segment by segment.
func matchFromStart(path, pattern string) bool {
	pathParts := strings.Split(path, "/")
	patternParts := strings.Split(pattern, "/")
	if len(pathParts) < len(patternParts) {
		return false
	}
	for i, pp := range patternParts {
		if !segmentMatch(pathParts[i], pp) {
			return false
		}
	}
	return true
}

// matchAnywhere matches a pattern at any position in the path
func matchAnywhere(path, pattern string) bool {
	pathParts := strings.Split(path, "/")
	patternParts := strings.Split(pattern, "/")

	// A bare pattern matches any single segment
	if len(patternParts) == 1 {
		for _, part := range pathParts {
			if segmentMatch(part, pattern) {
				return true
			}
		}
		return false
	}

	if len(pathParts) < len(patternParts) {
		return false
	}
	for i := 0; i <= len(pathParts)-len(patternParts); i++ {
		matched := true
		for j, pp := range patternParts {
			if !segmentMatch(pathParts[i+j], pp) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// segmentMatch matches one path segment against one pattern segment with
// * wildcard support.
func segmentMatch(text, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return text == pattern
	}

	parts := strings.Split(pattern, "*")
	if len(parts) == 2 {
		prefix, suffix := parts[0], parts[1]
		return strings.HasPrefix(text, prefix) &&
			strings.HasSuffix(text, suffix) &&
			len(text) >= len(prefix)+len(suffix)
	}
	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(text, pattern[1:])
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(text, pattern[:len(pattern)-1])
	}
	return text == pattern
}
