// Package clipboard copies repository URLs to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	atotto "github.com/atotto/clipboard"

	"christopherharwell/showrepo/pkg/git"
)

// Writer stores plain text somewhere the user can paste it from.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if atotto.Unsupported {
		return errors.New("no clipboard utility available on this system")
	}
	return atotto.WriteAll(text)
}

// Text joins the given clone URLs, one per line, after dropping their ".git"
// suffix.
func Text(urls []string) string {
	cleaned := make([]string, 0, len(urls))
	for _, url := range urls {
		if !git.HasSuffix(url) {
			slog.Debug("url has no .git suffix", "url", url)
		}
		cleaned = append(cleaned, git.TrimSuffix(url))
	}
	return strings.Join(cleaned, "\n")
}

// CopyURLs writes the cleaned URLs to w.
func CopyURLs(w Writer, urls []string) error {
	if err := w.WriteAll(Text(urls)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
