package types

import "math"

// Stats summarizes the repositories left after filtering.
type Stats struct {
	// Total is the number of repositories loaded from the file
	Total int

	// Count is the number of repositories after filtering and truncation
	Count int

	// Languages is the number of distinct programming languages
	Languages int

	// OS counts repositories per declared scope
	OS map[OS]int
}

// Percent returns the share of repositories with the given scope,
// rounded to one decimal place. It is 0 when there are no repositories.
func (s Stats) Percent(os OS) float64 {
	if s.Count == 0 {
		return 0
	}
	return math.Round(float64(s.OS[os])/float64(s.Count)*1000) / 10
}

// Filtered reports whether filtering reduced the repository set.
func (s Stats) Filtered() bool {
	return s.Count < s.Total
}
