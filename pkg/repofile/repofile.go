// Package repofile reads the flat repositories file, one bookmark per line
// with fields separated by "--".
package repofile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"christopherharwell/showrepo/pkg/types"
)

// Delimiter separates the fields of a line.
const Delimiter = "--"

// fieldCount is the number of fields of a well formed line:
// URL, name, OS, language and description.
const fieldCount = 5

// ErrNotFound is returned by Check when the repositories file is missing.
var ErrNotFound = errors.New("repositories file not found")

// Check resolves path against the current working directory and verifies
// that the file exists. It returns the resolved path.
//
// Parameters:
//   - path: Path to the repositories file, relative or absolute
//
// Returns:
//   - string: The absolute path of the file
//   - error: An error wrapping ErrNotFound if the file does not exist
func Check(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	if _, err := os.Stat(abs); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: '%s' does not exist. Try using 'addRepo' to create a file and retry", ErrNotFound, abs)
		}
		return "", fmt.Errorf("stat %s: %w", abs, err)
	}
	return abs, nil
}

// Load reads every repository listed in the file at path.
func Load(path string) ([]types.Repo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open repositories file: %w", err)
	}
	defer f.Close()

	repos, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	slog.Debug("repositories loaded", "file", path, "count", len(repos))
	return repos, nil
}

// Parse reads one repository per non-blank line from r. Lines are not
// validated: missing fields are left empty and extra fields end up in
// Repo.Extra.
func Parse(r io.Reader) ([]types.Repo, error) {
	var repos []types.Repo

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := splitLine(line)
		if len(fields) != fieldCount {
			slog.Debug("malformed line", "line", lineNo, "fields", len(fields))
		}
		repos = append(repos, newRepo(fields))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return repos, nil
}

func splitLine(line string) []string {
	fields := strings.Split(line, Delimiter)
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}

func newRepo(fields []string) types.Repo {
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	repo := types.Repo{
		URL:         field(0),
		Name:        field(1),
		OS:          types.OS(field(2)),
		Language:    field(3),
		Description: field(4),
	}
	if len(fields) > fieldCount {
		repo.Extra = fields[fieldCount:]
	}
	return repo
}
