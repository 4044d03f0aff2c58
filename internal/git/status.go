// Package git shells out to the git binary for per-path status. The engine
// only depends on the porcelain text contract: two status bytes, a space,
// then the path.
package git

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Kind is one porcelain status category.
type Kind uint8

const (
	None Kind = iota
	Untracked
	Modified
	Staged
	Renamed
	Ignored
	Unmerged
	Deleted
	Unknown
)

// FindRoot walks upward from start until a directory containing .git is
// found. Returns "" when start is not inside a repository.
func FindRoot(start string) string {
	current := start
	for current != "" {
		if _, err := os.Lstat(filepath.Join(current, ".git")); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
	return ""
}

// Classify maps the two porcelain status bytes (index column x, worktree
// column y) to a Kind. The precedence order is deliberate and must not be
// reordered.
func Classify(x, y byte) Kind {
	switch {
	case x == '?' && y == '?':
		return Untracked
	case x == '!' && y == '!':
		return Ignored
	case x == ' ' && y == 'M':
		return Modified
	case x == 'M' || x == 'A' || x == 'C':
		return Staged
	case x == 'R':
		return Renamed
	case x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D'):
		return Unmerged
	case x == 'D' || y == 'D':
		return Deleted
	case x == ' ' && y == ' ':
		return None
	default:
		return Unknown
	}
}

// Status runs `git status --porcelain -uall` in root and returns a map from
// canonicalized path to Kind. A missing git binary or a non-repository root
// yields an empty map; status is advisory and never fails the caller.
func Status(root string, canonical func(string) string) map[string]Kind {
	statuses := make(map[string]Kind)
	if root == "" {
		return statuses
	}

	cmd := exec.Command("git", "-C", root, "status", "--porcelain", "-uall")
	out, err := cmd.Output()
	if err != nil {
		return statuses
	}
	return parseStatus(out, root, canonical)
}

func parseStatus(out []byte, root string, canonical func(string) string) map[string]Kind {
	statuses := make(map[string]Kind)
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 4 {
			continue
		}
		kind := Classify(line[0], line[1])
		rel := strings.TrimRight(line[3:], "\r\n")
		// Rename lines carry "old -> new"; only the new path exists on disk.
		if idx := strings.Index(rel, " -> "); idx >= 0 {
			rel = rel[idx+4:]
		}
		rel = unquotePath(rel)
		statuses[canonical(filepath.Join(root, rel))] = kind
	}
	return statuses
}

// unquotePath decodes the C-quoted form git uses for paths with special
// bytes. The escapes (`\nnn` octal, \t, \", \\) are a subset of Go's string
// literal escapes, so strconv.Unquote recovers the on-disk bytes.
func unquotePath(rel string) string {
	if len(rel) < 2 || rel[0] != '"' || rel[len(rel)-1] != '"' {
		return rel
	}
	if unquoted, err := strconv.Unquote(rel); err == nil {
		return unquoted
	}
	return strings.Trim(rel, `"`)
}
