package filter

import (
	"testing"

	"christopherharwell/showrepo/pkg/types"
)

func TestComputeStats(t *testing.T) {
	repos := []types.Repo{
		{OS: types.OSAny, Language: "Go"},
		{OS: types.OSLinux, Language: "go"},
		{OS: types.OSLinux, Language: "golang"},
		{OS: types.OSWindows, Language: "Rust"},
		{OS: types.OSLinux, Language: "Python"},
	}

	s := ComputeStats(repos, 8)

	if s.Total != 8 || s.Count != 5 {
		t.Errorf("Total/Count = %d/%d, want 8/5", s.Total, s.Count)
	}
	if !s.Filtered() {
		t.Error("Filtered() should be true")
	}
	if s.Languages != 3 {
		t.Errorf("Languages = %d, want 3", s.Languages)
	}
	if s.OS[types.OSAny] != 1 || s.OS[types.OSLinux] != 3 || s.OS[types.OSWindows] != 1 {
		t.Errorf("OS counts = %v", s.OS)
	}
	if got := s.Percent(types.OSLinux); got != 60 {
		t.Errorf("Percent(Linux) = %v, want 60", got)
	}
	if got := s.Percent(types.OSAny); got != 20 {
		t.Errorf("Percent(Any) = %v, want 20", got)
	}
}

func TestComputeStats_UnknownLanguage(t *testing.T) {
	repos := []types.Repo{
		{Language: "MyDSL"},
		{Language: "mydsl"},
	}
	if s := ComputeStats(repos, 2); s.Languages != 1 {
		t.Errorf("Languages = %d, want 1", s.Languages)
	}
}
