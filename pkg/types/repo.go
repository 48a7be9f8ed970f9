package types

import "strings"

// OS is the declared operating system scope of a bookmarked repository.
type OS string

const (
	OSAny     OS = "Any"
	OSLinux   OS = "Linux"
	OSWindows OS = "Windows"
)

// OSScopes lists the valid scopes in display order.
var OSScopes = []OS{OSAny, OSLinux, OSWindows}

// ParseOS normalizes a user supplied scope. It accepts the full word or its
// first letter, in any case ("l", "Linux", "LINUX").
func ParseOS(s string) (OS, bool) {
	for _, scope := range OSScopes {
		word := string(scope)
		if strings.EqualFold(s, word) || strings.EqualFold(s, word[:1]) {
			return scope, true
		}
	}
	return "", false
}

// Repo represents one bookmarked repository, as read from a line of the
// repositories file.
type Repo struct {
	// URL is the repository location, usually ending in ".git"
	URL string

	// Name is either "author/repo" or just "repo"
	Name string

	// OS is the declared scope; values from the file are kept as written
	OS OS

	// Language is the main programming language, case preserved
	Language string

	// Description is free text
	Description string

	// Extra holds any fields beyond the fifth one on malformed lines
	Extra []string
}
