// Package charset provides an immutable character set.
package charset

import (
	"slices"
	"strings"
)

// Set is an immutable character set.
type Set struct {
	chars map[rune]struct{}
}

// New constructs a new Set from the characters of chars.
func New(chars string) *Set {
	s := &Set{chars: make(map[rune]struct{}, len(chars))}
	for _, c := range chars {
		s.chars[c] = struct{}{}
	}
	return s
}

// With returns a new Set with the provided characters added.
func (s *Set) With(chars ...rune) *Set {
	m := make(map[rune]struct{}, len(s.chars)+len(chars))
	for c := range s.chars {
		m[c] = struct{}{}
	}
	for _, c := range chars {
		m[c] = struct{}{}
	}
	return &Set{chars: m}
}

// Without returns a new Set with the provided characters removed.
func (s *Set) Without(chars ...rune) *Set {
	m := make(map[rune]struct{}, len(s.chars))
	for c := range s.chars {
		m[c] = struct{}{}
	}
	for _, c := range chars {
		delete(m, c)
	}
	return &Set{chars: m}
}

// Contains checks if the given character is in the set.
func (s *Set) Contains(c rune) bool {
	_, ok := s.chars[c]
	return ok
}

// ContainsAny checks if any character of str is in the set.
func (s *Set) ContainsAny(str string) bool {
	for _, c := range str {
		if s.Contains(c) {
			return true
		}
	}
	return false
}

// Count returns the number of characters of str that are in the set.
func (s *Set) Count(str string) int {
	var n int
	for _, c := range str {
		if s.Contains(c) {
			n++
		}
	}
	return n
}

// Len returns the number of characters in the set.
func (s *Set) Len() int {
	return len(s.chars)
}

// Items returns the characters in the set as a sorted slice. It's safe for
// the caller to mutate the returned slice.
func (s *Set) Items() []rune {
	chars := make([]rune, 0, len(s.chars))
	for c := range s.chars {
		chars = append(chars, c)
	}
	slices.Sort(chars)
	return chars
}

// String implements Stringer.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteRune('{')
	for i, c := range s.Items() {
		if i > 0 {
			b.WriteRune(',')
			b.WriteRune(' ')
		}
		b.WriteRune(c)
	}
	b.WriteRune('}')
	return b.String()
}
