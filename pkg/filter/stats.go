package filter

import (
	"strings"

	"github.com/go-enry/go-enry/v2"

	"christopherharwell/showrepo/pkg/types"
)

// ComputeStats summarizes repos. total is the number of repositories before
// filtering.
func ComputeStats(repos []types.Repo, total int) types.Stats {
	stats := types.Stats{
		Total: total,
		Count: len(repos),
		OS:    make(map[types.OS]int, len(types.OSScopes)),
	}

	languages := make(map[string]struct{})
	for _, r := range repos {
		languages[languageKey(r.Language)] = struct{}{}
		stats.OS[r.OS]++
	}
	stats.Languages = len(languages)

	return stats
}

// languageKey folds spellings of the same language together: "go", "Go" and
// "golang" share a key.
func languageKey(lang string) string {
	if canonical, ok := enry.GetLanguageByAlias(lang); ok {
		return strings.ToLower(canonical)
	}
	return strings.ToLower(lang)
}
