// Package filter sorts, filters and truncates the loaded repositories
// according to the user's flags.
//
// The stages always run in the same order: author sort, language sort,
// repo sort, language filter, search, OS filter, first/last truncation,
// author stripping, clipboard copy and finally stats. Truncation therefore
// happens after every filter, and stats describe the final set.
package filter

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"christopherharwell/showrepo/pkg/clipboard"
	"christopherharwell/showrepo/pkg/git"
	"christopherharwell/showrepo/pkg/types"
)

// ErrNoResults is wrapped when a filter leaves no repository, or when there is
// nothing to copy.
var ErrNoResults = errors.New("no results")

// NoResultsError carries the message shown to the user for an empty result.
type NoResultsError struct {
	Message string
}

func (e *NoResultsError) Error() string {
	return e.Message
}

func (e *NoResultsError) Unwrap() error {
	return ErrNoResults
}

func noResults(format string, args ...any) error {
	return &NoResultsError{Message: fmt.Sprintf(format, args...)}
}

// Reporter receives the user facing messages emitted while the pipeline runs.
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Stats(stats types.Stats)
}

// Pipeline applies a Config to a list of repositories.
type Pipeline struct {
	Config    types.Config
	Reporter  Reporter
	Clipboard clipboard.Writer
}

// Run returns the repositories selected by the pipeline's Config. The input
// slice is left untouched.
//
// Parameters:
//   - repos: The repositories loaded from the file
//
// Returns:
//   - []types.Repo: The sorted, filtered and truncated repositories
//   - error: An error wrapping ErrNoResults or types.ErrInvalidOS, or a
//     clipboard failure
func (p *Pipeline) Run(repos []types.Repo) ([]types.Repo, error) {
	cfg := p.Config
	total := len(repos)
	result := slices.Clone(repos)

	if cfg.SortByAuthor {
		SortByAuthor(result)
	}
	if cfg.SortByLanguage {
		if cfg.OnlyLanguage != "" {
			p.Reporter.Warn("'--sort-by-language' and '--only-language' flags simultaneously enabled...")
		}
		SortByLanguage(result)
	}
	if cfg.SortByRepo {
		if cfg.SortByAuthor {
			p.Reporter.Warn("Multiple 'sort' flags simultaneously enabled. Output will be sorted by repository name...")
		}
		if !SortByRepo(result) {
			p.Reporter.Warn("Unable to sort by repository name: some names have no 'author/' prefix. Keeping original order...")
		}
	}

	if cfg.OnlyLanguage != "" {
		result = ByLanguage(result, cfg.OnlyLanguage)
		if len(result) == 0 {
			return nil, noResults("No results found for language '%s'...", cfg.OnlyLanguage)
		}
	}
	if cfg.Search != "" {
		result = Search(result, cfg.Search)
		if len(result) == 0 {
			return nil, noResults("Word '%s' could not be found for any repository...", cfg.Search)
		}
	}
	if cfg.OnlyOS != "" {
		scope, ok := types.ParseOS(cfg.OnlyOS)
		if !ok {
			return nil, types.InvalidOSError(cfg.OnlyOS)
		}
		result = ByOS(result, scope)
		if len(result) == 0 {
			return nil, noResults("No items found for %s OS...", scope)
		}
	}

	result = p.truncate(result)

	if cfg.NoAuthor {
		StripAuthors(result)
	}

	if cfg.Copy {
		if err := p.copy(result); err != nil {
			return nil, err
		}
	}

	if cfg.ShowStats {
		p.Reporter.Stats(ComputeStats(result, total))
	}

	return result, nil
}

func (p *Pipeline) truncate(repos []types.Repo) []types.Repo {
	first, last := p.Config.First, p.Config.Last

	if first > 0 {
		if last > 0 {
			p.Reporter.Warn(fmt.Sprintf("'--first' and '--last' simultaneously enabled. Result will be cut only considering '--first' flag (first %d rows)...", first))
		}
		if first > len(repos) {
			p.Reporter.Warn(fmt.Sprintf("Unable to show first %d rows since max number of rows is %d. Displaying full table...", first, len(repos)))
			return repos
		}
		return First(repos, first)
	}

	if last > 0 {
		if last > len(repos) {
			p.Reporter.Warn(fmt.Sprintf("Unable to show last %d rows since max number of rows is %d. Displaying full table...", last, len(repos)))
			return repos
		}
		return Last(repos, last)
	}
	return repos
}

func (p *Pipeline) copy(repos []types.Repo) error {
	if len(repos) == 0 {
		return noResults("Repository list is empty")
	}

	urls := make([]string, len(repos))
	for i, r := range repos {
		urls[i] = r.URL
	}
	if err := clipboard.CopyURLs(p.Clipboard, urls); err != nil {
		return err
	}

	if len(urls) == 1 {
		p.Reporter.Info("Repository copied to clipboard!")
	} else {
		p.Reporter.Info("Multiple repositories copied to clipboard!")
	}
	return nil
}

// SortByAuthor stably sorts repos by their full "author/repo" name.
func SortByAuthor(repos []types.Repo) {
	slices.SortStableFunc(repos, func(a, b types.Repo) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// SortByLanguage stably sorts repos by language.
func SortByLanguage(repos []types.Repo) {
	slices.SortStableFunc(repos, func(a, b types.Repo) int {
		return strings.Compare(a.Language, b.Language)
	})
}

// SortByRepo stably sorts repos by the part of the name after "author/".
// If any name has no author prefix the slice is left untouched and false
// is returned.
func SortByRepo(repos []types.Repo) bool {
	keys := make(map[string]string, len(repos))
	for _, r := range repos {
		_, repo, ok := git.SplitName(r.Name)
		if !ok {
			return false
		}
		keys[r.Name] = repo
	}

	slices.SortStableFunc(repos, func(a, b types.Repo) int {
		return strings.Compare(keys[a.Name], keys[b.Name])
	})
	return true
}

// ByLanguage keeps repos whose language equals lang, ignoring case.
func ByLanguage(repos []types.Repo, lang string) []types.Repo {
	return keep(repos, func(r types.Repo) bool {
		return strings.EqualFold(r.Language, lang)
	})
}

// Search keeps repos whose name or description contains term, ignoring case.
// URL, OS and language are never searched.
func Search(repos []types.Repo, term string) []types.Repo {
	term = strings.ToLower(term)
	return keep(repos, func(r types.Repo) bool {
		return strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Description), term)
	})
}

// ByOS keeps repos declared for the given scope.
func ByOS(repos []types.Repo, scope types.OS) []types.Repo {
	return keep(repos, func(r types.Repo) bool {
		return r.OS == scope
	})
}

// First returns the first n repos. n must not exceed len(repos).
func First(repos []types.Repo, n int) []types.Repo {
	return repos[:n]
}

// Last returns the last n repos. n must not exceed len(repos).
func Last(repos []types.Repo, n int) []types.Repo {
	return repos[len(repos)-n:]
}

// StripAuthors rewrites every name to its repo part. Names without an
// author prefix are kept.
func StripAuthors(repos []types.Repo) {
	for i := range repos {
		repos[i].Name = git.StripAuthor(repos[i].Name)
	}
}

func keep(repos []types.Repo, match func(types.Repo) bool) []types.Repo {
	var out []types.Repo
	for _, r := range repos {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}
