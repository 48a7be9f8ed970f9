package console

import (
	"bytes"
	"strings"
	"testing"

	"christopherharwell/showrepo/pkg/table"
	"christopherharwell/showrepo/pkg/types"
)

func TestPrinter_Plain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, false)

	p.Info("hello")
	p.Warn("careful")
	p.Error("broken")

	want := "[*] hello\n[!] Warning! careful\n"
	if out.String() != want {
		t.Errorf("out = %q, want %q", out.String(), want)
	}
	if errOut.String() != "[!] Error: broken\n" {
		t.Errorf("err = %q", errOut.String())
	}
}

func TestPrinter_Color(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, true)

	p.Info("note")
	p.Warn("careful")
	p.Error("broken")

	if !strings.HasPrefix(out.String(), table.LightCyan+"[*]"+table.Reset) {
		t.Errorf("colored note should use the table's light cyan: %q", out.String())
	}

	if !strings.Contains(out.String(), "\033[") || !strings.HasSuffix(out.String(), "careful\n") {
		t.Errorf("colored warning = %q", out.String())
	}
	if !strings.HasSuffix(errOut.String(), reset+"\n") {
		t.Errorf("colored error should end with a reset code: %q", errOut.String())
	}
}

func TestPrinter_Stats(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, false)

	p.Stats(types.Stats{
		Total:     4,
		Count:     3,
		Languages: 2,
		OS:        map[types.OS]int{types.OSAny: 1, types.OSLinux: 2},
	})

	want := strings.Join([]string{
		"[*] Number of repositories after applying filters: 3",
		"[*] Number of different languages: 2",
		"[*] Operating System scope:",
		"    [+] Any: 1 (33.3%)",
		"    [+] Linux: 2 (66.7%)",
		"    [+] Windows: 0 (0.0%)",
		"",
	}, "\n")
	if out.String() != want {
		t.Errorf("stats output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestPrinter_StatsUnfiltered(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &out, false)

	p.Stats(types.Stats{Total: 2, Count: 2, Languages: 1, OS: map[types.OS]int{types.OSAny: 2}})

	if strings.Contains(out.String(), "after applying filters") {
		t.Errorf("filtered count should be omitted: %q", out.String())
	}
}
