// Package wordlist loads the word lists that passwords are derived from.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

var (
	// ErrNoWords is returned when a word source contains no words.
	ErrNoWords = errors.New("word list has no words")
	// ErrNotFound is returned by Bucket.Load when the configured bucket
	// or object does not exist.
	ErrNotFound = errors.New("word list not found")
)

// A List is an immutable, ordered collection of words.
type List struct {
	words []string
}

// Parse reads a word list with one word per line. Surrounding whitespace
// is trimmed and blank lines are skipped.
func Parse(r io.Reader) (List, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		word := strings.TrimSpace(sc.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := sc.Err(); err != nil {
		return List{}, fmt.Errorf("read word list: %w", err)
	}
	if len(words) == 0 {
		return List{}, ErrNoWords
	}
	return List{words: words}, nil
}

// Len returns the number of words in the list.
func (l List) Len() int {
	return len(l.words)
}

// Words returns the words in order. It's safe for the caller to mutate
// the returned slice.
func (l List) Words() []string {
	return slices.Clone(l.words)
}
