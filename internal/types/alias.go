package types

import (
	"sort"
	"strings"
)

// Aliased is implemented by objects that can be looked up by a user-typed alias.
type Aliased interface {
	GetName() string
	GetAliases() []string
}

// AliasedSet resolves case-insensitive aliases to objects.
// It is built once and is safe for concurrent readers.
type AliasedSet[T Aliased] struct {
	byName  map[string]T
	byAlias map[string]T
	ordered []T
	// Sorted by descending length so the first prefix hit is the longest one.
	aliases []string
}

// NewAliasedSet registers every object's canonical name and aliases.
// Alias entries may hold several comma-separated tokens; tokens containing
// a space are ignored. When two objects claim the same alias the first wins.
func NewAliasedSet[T Aliased](objects ...T) *AliasedSet[T] {
	s := &AliasedSet[T]{
		byName:  make(map[string]T, len(objects)),
		byAlias: make(map[string]T),
		ordered: make([]T, 0, len(objects)),
	}

	for _, obj := range objects {
		s.ordered = append(s.ordered, obj)
		s.byName[strings.ToLower(obj.GetName())] = obj

		for _, alias := range obj.GetAliases() {
			for _, token := range strings.Split(alias, ",") {
				if token == "" || strings.Contains(token, " ") {
					continue
				}
				lower := strings.ToLower(token)
				if _, taken := s.byAlias[lower]; taken {
					continue
				}
				s.byAlias[lower] = obj
				s.aliases = append(s.aliases, lower)
			}
		}
	}

	sort.SliceStable(s.aliases, func(i, j int) bool {
		return len(s.aliases[i]) > len(s.aliases[j])
	})

	return s
}

// Get returns the object registered under the canonical name.
func (s *AliasedSet[T]) Get(name string) (T, bool) {
	obj, ok := s.byName[strings.ToLower(name)]
	return obj, ok
}

// ByAlias returns the object registered under an exact alias.
func (s *AliasedSet[T]) ByAlias(alias string) (T, bool) {
	obj, ok := s.byAlias[strings.ToLower(alias)]
	return obj, ok
}

// FindLongestAlias returns the longest registered alias that prefixes input.
// The returned alias is lowercased; its length is the number of bytes to
// strip from the lowercased input.
func (s *AliasedSet[T]) FindLongestAlias(input string) (string, bool) {
	lower := strings.ToLower(input)
	for _, alias := range s.aliases {
		if strings.HasPrefix(lower, alias) {
			return alias, true
		}
	}
	return "", false
}

// Match resolves the longest alias prefixing input and returns its object
// together with the remainder of input following the alias.
func (s *AliasedSet[T]) Match(input string) (T, string, bool) {
	var zero T
	alias, ok := s.FindLongestAlias(input)
	if !ok {
		return zero, input, false
	}
	return s.byAlias[alias], stripPrefixFold(input, alias), true
}

// stripPrefixFold removes a lowercased prefix from input, walking runes so
// that case mappings which change byte width are handled.
func stripPrefixFold(input, lowerPrefix string) string {
	consumed := 0
	for i, r := range input {
		if consumed >= len(lowerPrefix) {
			return input[i:]
		}
		consumed += len(strings.ToLower(string(r)))
	}
	return ""
}

// Aliases returns all registered aliases, longest first.
func (s *AliasedSet[T]) Aliases() []string {
	out := make([]string, len(s.aliases))
	copy(out, s.aliases)
	return out
}

// All returns the objects in registration order.
func (s *AliasedSet[T]) All() []T {
	out := make([]T, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len returns the number of registered objects.
func (s *AliasedSet[T]) Len() int {
	return len(s.ordered)
}

// First returns the first registered object.
func (s *AliasedSet[T]) First() (T, bool) {
	var zero T
	if len(s.ordered) == 0 {
		return zero, false
	}
	return s.ordered[0], true
}
