package syllabus

import (
	"slices"
	"strconv"
	"strings"
)

// Stage names used for dataset slugs and default output paths.
const (
	StageElementary   = "elementary"
	StageIntermediate = "intermediate"
	StageAdvanced     = "advanced"
	StageMixed        = "mixed"
)

const advancedBand = "7-9"

// LevelSet is the set of requested syllabus levels. Members are level
// numbers ("1".."9") and the raw range tokens they were expanded from.
type LevelSet map[string]struct{}

// ParseLevels parses a comma-separated list such as "1,2,3" or "4-6".
// A range adds every level it covers and also keeps the range token itself,
// so "7-9" matches the combined advanced band. Blank items are ignored; a
// range with non-numeric ends is kept only as a token.
func ParseLevels(s string) LevelSet {
	set := make(LevelSet)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[part] = struct{}{}

		lo, hi, ok := strings.Cut(part, "-")
		if !ok {
			continue
		}
		start, err1 := strconv.Atoi(lo)
		end, err2 := strconv.Atoi(hi)
		if err1 != nil || err2 != nil {
			continue
		}
		if start > end {
			start, end = end, start
		}
		for i := start; i <= end; i++ {
			set[strconv.Itoa(i)] = struct{}{}
		}
	}
	return set
}

// Has reports whether level is in the set.
func (s LevelSet) Has(level string) bool {
	_, ok := s[level]
	return ok
}

// IncludesAdvanced reports whether any part of the 7-9 band was requested.
func (s LevelSet) IncludesAdvanced() bool {
	return s.Has("7") || s.Has("8") || s.Has("9") || s.Has(advancedBand)
}

// Stage classifies the set. Only numeric members are compared, so "4-6"
// and "4,5,6" are both intermediate.
func (s LevelSet) Stage() string {
	nums := s.numeric()
	switch {
	case slices.Equal(nums, []int{1, 2, 3}):
		return StageElementary
	case slices.Equal(nums, []int{4, 5, 6}):
		return StageIntermediate
	case s.IncludesAdvanced():
		return StageAdvanced
	default:
		return StageMixed
	}
}

// Slice returns the members in sorted order, for logging.
func (s LevelSet) Slice() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func (s LevelSet) numeric() []int {
	var nums []int
	for k := range s {
		if n, err := strconv.Atoi(k); err == nil {
			nums = append(nums, n)
		}
	}
	slices.Sort(nums)
	return nums
}
