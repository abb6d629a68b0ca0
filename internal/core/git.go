package core

import (
	"sort"
	"time"
)

// BranchSet is an unordered set of branch names.
type BranchSet map[string]struct{}

// NewBranchSet builds a set from names, dropping duplicates and empty names.
func NewBranchSet(names ...string) BranchSet {
	s := make(BranchSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name into the set.
func (s BranchSet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether name is in the set. Matching is case-sensitive.
func (s BranchSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of branches.
func (s BranchSet) Len() int {
	return len(s)
}

// Sorted returns the branch names in lexical order.
func (s BranchSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Remote methods reported by `git remote -v`.
const (
	MethodFetch = "fetch"
	MethodPush  = "push"
)

// RemoteMap maps remote name to method (fetch/push) to URL.
type RemoteMap map[string]map[string]string

// Set records url for the given remote and method.
func (m RemoteMap) Set(name, method, url string) {
	if m[name] == nil {
		m[name] = make(map[string]string, 2)
	}
	m[name][method] = url
}

// Commit is one record of `git log`.
type Commit struct {
	Committer string    `json:"committer"`
	Date      time.Time `json:"date"`
	Subject   string    `json:"subject"`
}
