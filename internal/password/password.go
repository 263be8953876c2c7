// Package password derives typable passwords from word lists.
package password

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/hexpass/hexpass/internal/charset"
)

const (
	// PhraseWords is the number of words sampled into the phrase.
	PhraseWords = 4
	// Length is the number of characters sampled from the digest.
	Length = 15
	// Symbols is the fixed alphabet of insertable symbols.
	Symbols = "=-!$%^&*(){}[]"

	blockLen = 4
	// minLetters is the smallest number of capitalizable characters a
	// sample may contain.
	minLetters = 2
	// maxAttempts bounds resampling when draws keep landing on digits.
	maxAttempts = 32
)

// Capitalizable is the set of letters eligible for uppercasing. Letters
// easily confused with digits or with each other (b, i, o) are excluded.
// Over a hex digest only a, c, d, e and f can actually occur.
var Capitalizable = charset.New("abcdefghijklmnopqrstuvwxyz").Without('b', 'i', 'o')

var (
	// ErrEmptyWordList is returned by Generate when the word list has no
	// words.
	ErrEmptyWordList = errors.New("empty word list")
	// ErrDerivationImpossible is returned by Generate when no valid
	// password can be derived from the sampled phrase.
	ErrDerivationImpossible = errors.New("derivation impossible")
)

// Rand is the source of randomness for Generate. IntN returns a uniform
// int in [0, n); *math/rand/v2.Rand implements it.
type Rand interface {
	IntN(n int) int
}

// A Password is a successfully derived password. Passwords are only
// produced by Generate; the zero value is empty.
type Password struct {
	chars string
}

// String returns the password split into four-character blocks joined
// with single spaces.
func (p Password) String() string {
	var sb strings.Builder
	for i := 0; i < len(p.chars); i += blockLen {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(p.chars[i : i+blockLen])
	}
	return sb.String()
}

// Compact returns the password without block separators, for systems
// that reject spaces in password fields.
func (p Password) Compact() string {
	return p.chars
}

// Generate derives a password from words using draws from r. It samples
// a four-word phrase, hashes it with SHA-256, samples fifteen characters
// from the hex digest, uppercases one of them and inserts one symbol.
//
// Draws are consumed in a fixed order (four word picks, fifteen digest
// picks per sampling attempt, one position pick, one index pick, one
// symbol pick), so equal sources derive equal passwords.
func Generate(words []string, r Rand) (Password, error) {
	if len(words) == 0 {
		return Password{}, ErrEmptyWordList
	}
	digest := hashPhrase(genPhrase(words, r))
	if !Capitalizable.ContainsAny(digest) {
		return Password{}, fmt.Errorf("%w: digest %q has no capitalizable characters", ErrDerivationImpossible, digest)
	}
	sample, err := samplePassword(digest, r)
	if err != nil {
		return Password{}, err
	}
	capitalized, err := capitalize(sample, r)
	if err != nil {
		return Password{}, err
	}
	return Password{chars: insertSymbol(capitalized, r)}, nil
}

// genPhrase joins randomly chosen words with single spaces. Words are
// chosen with replacement and trimmed of surrounding whitespace.
func genPhrase(words []string, r Rand) string {
	var sb strings.Builder
	for i := range PhraseWords {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(strings.TrimSpace(words[r.IntN(len(words))]))
	}
	return sb.String()
}

func hashPhrase(phrase string) string {
	sum := sha256.Sum256([]byte(phrase))
	return hex.EncodeToString(sum[:])
}

// samplePassword draws Length characters from the digest, with
// replacement, until the sample contains at least minLetters
// capitalizable characters.
func samplePassword(digest string, r Rand) (string, error) {
	for range maxAttempts {
		sample := make([]byte, Length)
		for i := range sample {
			sample[i] = digest[r.IntN(len(digest))]
		}
		if Capitalizable.Count(string(sample)) >= minLetters {
			return string(sample), nil
		}
	}
	return "", fmt.Errorf("%w: no sample with %d capitalizable characters in %d attempts", ErrDerivationImpossible, minLetters, maxAttempts)
}

// capitalize uppercases one capitalizable character of sample, chosen
// uniformly over positions. A letter occurring at two positions is twice
// as likely to be the one uppercased.
func capitalize(sample string, r Rand) (string, error) {
	var positions []int
	for i, c := range sample {
		if Capitalizable.Contains(c) {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return "", fmt.Errorf("%w: sample %q has no capitalizable characters", ErrDerivationImpossible, sample)
	}
	pos := positions[r.IntN(len(positions))]
	return sample[:pos] + strings.ToUpper(sample[pos:pos+1]) + sample[pos+1:], nil
}

// insertSymbol inserts one random symbol at a random index. Both ends
// are eligible: index 0 prepends and index len(sample) appends.
func insertSymbol(sample string, r Rand) string {
	pos := r.IntN(len(sample) + 1)
	sym := Symbols[r.IntN(len(Symbols))]
	return sample[:pos] + string(sym) + sample[pos:]
}
