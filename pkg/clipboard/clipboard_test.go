package clipboard

import (
	"errors"
	"testing"
)

type memWriter struct {
	text string
	err  error
}

func (m *memWriter) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		urls []string
		want string
	}{
		{"single", []string{"https://github.com/alice/tool.git"}, "https://github.com/alice/tool"},
		{"no suffix", []string{"https://github.com/alice/tool"}, "https://github.com/alice/tool"},
		{
			"multiple",
			[]string{"https://github.com/alice/tool.git", "https://github.com/bob/lib.git"},
			"https://github.com/alice/tool\nhttps://github.com/bob/lib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.urls); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCopyURLs(t *testing.T) {
	w := &memWriter{}
	if err := CopyURLs(w, []string{"https://github.com/alice/tool.git"}); err != nil {
		t.Fatal(err)
	}
	if w.text != "https://github.com/alice/tool" {
		t.Errorf("clipboard = %q", w.text)
	}

	failing := &memWriter{err: errors.New("no display")}
	if err := CopyURLs(failing, []string{"x"}); err == nil {
		t.Error("CopyURLs should return the clipboard error")
	}
}
