package anchor

import "strconv"

// Scope selects the namespace inside which labels must stay unique.
type Scope int

const (
	// ScopeTree enforces uniqueness across the whole documentation tree.
	ScopeTree Scope = iota
	// ScopeFile enforces uniqueness only within each file.
	ScopeFile
)

// ParseScope parses "tree" or "file".
func ParseScope(s string) (Scope, bool) {
	switch s {
	case "tree":
		return ScopeTree, true
	case "file":
		return ScopeFile, true
	default:
		return ScopeTree, false
	}
}

func (s Scope) String() string {
	if s == ScopeFile {
		return "file"
	}
	return "tree"
}

// Set tracks labels already taken within one uniqueness scope.
type Set struct {
	taken map[string]struct{}
}

func NewSet() *Set {
	return &Set{taken: make(map[string]struct{})}
}

// Reserve marks a label as taken without claiming it, used for targets that
// already exist in the tree before any insertion happens.
func (s *Set) Reserve(label string) {
	s.taken[label] = struct{}{}
}

// Claim returns label if free, otherwise the first free "-N" suffixed
// variant (label-1, label-2, ...), and marks the result as taken.
func (s *Set) Claim(label string) string {
	candidate := label
	for i := 1; ; i++ {
		if _, ok := s.taken[candidate]; !ok {
			s.taken[candidate] = struct{}{}
			return candidate
		}
		candidate = label + "-" + strconv.Itoa(i)
	}
}
