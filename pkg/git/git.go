// Package git holds helpers for the git flavoured strings stored in the
// repositories file: clone URLs and "author/repo" names.
package git

import "strings"

const gitSuffix = ".git"

// TrimSuffix removes a trailing ".git" from a clone URL so it points at the
// repository web page. URLs without the suffix are returned unchanged, which
// makes the call idempotent.
func TrimSuffix(url string) string {
	return strings.TrimSuffix(url, gitSuffix)
}

// HasSuffix reports whether url ends in ".git".
func HasSuffix(url string) bool {
	return strings.HasSuffix(url, gitSuffix)
}

// SplitName splits an "author/repo" name. The repo part is the segment
// between the first and the second slash, so "a/b/c" yields "a" and "b".
// ok is false when name contains no slash; author and repo are then empty.
func SplitName(name string) (author, repo string, ok bool) {
	parts := strings.Split(name, "/")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// StripAuthor returns the repo part of name, or name itself when it has no
// author prefix. Applying it twice gives the same result as applying it once.
func StripAuthor(name string) string {
	if _, repo, ok := SplitName(name); ok {
		return repo
	}
	return name
}
