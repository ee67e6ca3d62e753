package config

import (
	"regexp"
	"strings"
)

type setOpType int

const (
	setUnion setOpType = iota
	setSubtract
)

type setOp struct {
	t setOpType
	r *regexp.Regexp
}

// A string set described by a sequence of glob patterns. The set is built up by
// starting from the empty set and then applying each operation left to right.
type stringSet []setOp

func (ss stringSet) contains(s string) bool {
	b := false
	for _, op := range ss {
		if op.r.MatchString(s) {
			switch op.t {
			case setUnion:
				b = true
			case setSubtract:
				b = false
			}
		}
	}
	return b
}

func newOp(pat string) setOp {
	var s setOp
	pattern, negated := strings.CutPrefix(pat, "!")
	if negated {
		s.t = setSubtract
	} else {
		s.t = setUnion
	}

	patternParts := strings.Split(pattern, "*")
	for i := range patternParts {
		patternParts[i] = regexp.QuoteMeta(patternParts[i])
	}
	// quoting makes every pattern a valid regexp
	s.r = regexp.MustCompile("^" + strings.Join(patternParts, ".*") + "$")
	return s
}

func sliceMap[Slice ~[]A, A any, B any](s Slice, f func(A) B) []B {
	result := make([]B, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}

// Selector decides which variants to run.
type Selector interface {
	Selects(label string) bool
}

// NewSelector builds a Selector from glob patterns. An empty list selects
// everything.
func NewSelector(patterns []string) Selector {
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}
	return stringSet(sliceMap(patterns, newOp))
}

func (ss stringSet) Selects(label string) bool {
	return ss.contains(label)
}
