package repofile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"christopherharwell/showrepo/pkg/types"
)

const sample = `https://github.com/alice/tool.git -- alice/tool -- Linux -- Go -- A CLI tool
https://github.com/bob/winthing.git--bob/winthing--Windows--C#--Windows helper

https://github.com/carol/lib.git -- carol/lib -- Any -- Rust -- Library with -- odd text
https://example.com/broken.git -- broken
`

func TestParse(t *testing.T) {
	repos, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	if len(repos) != 4 {
		t.Fatalf("Expected 4 repos (one per non-empty line), got %d", len(repos))
	}

	want := types.Repo{
		URL:         "https://github.com/alice/tool.git",
		Name:        "alice/tool",
		OS:          types.OSLinux,
		Language:    "Go",
		Description: "A CLI tool",
	}
	got := repos[0]
	if got.URL != want.URL || got.Name != want.Name || got.OS != want.OS ||
		got.Language != want.Language || got.Description != want.Description {
		t.Errorf("repos[0] = %+v, want %+v", got, want)
	}

	if repos[1].Language != "C#" || repos[1].Name != "bob/winthing" {
		t.Errorf("fields without surrounding spaces not split correctly: %+v", repos[1])
	}
}

func TestParse_Malformed(t *testing.T) {
	repos, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	extra := repos[2]
	if extra.Description != "Library with" {
		t.Errorf("Description = %q, want %q", extra.Description, "Library with")
	}
	if len(extra.Extra) != 1 || extra.Extra[0] != "odd text" {
		t.Errorf("Extra = %q, want [odd text]", extra.Extra)
	}

	short := repos[3]
	if short.Name != "broken" || short.OS != "" || short.Language != "" || short.Description != "" {
		t.Errorf("missing fields should be empty, got %+v", short)
	}
}

func TestParse_CountsNonEmptyLines(t *testing.T) {
	input := "\n\na -- b -- Any -- Go -- x\n   \nc -- d -- Any -- Go -- y\n"
	repos, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 2 {
		t.Errorf("Expected 2 repos, got %d", len(repos))
	}
}

func TestCheck(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "repositories.txt")

	_, err := Check(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Check() on missing file error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "addRepo") {
		t.Errorf("error should suggest the add tool: %v", err)
	}

	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	abs, err := Check(path)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("Check() = %q, want an absolute path", abs)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repositories.txt")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	repos, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(repos) != 4 {
		t.Errorf("Expected 4 repos, got %d", len(repos))
	}
}
