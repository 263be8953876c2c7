// Package proptest provides utilities for writing property-based tests
// for the password derivation pipeline.
package proptest

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/antithesishq/antithesis-sdk-go/assert"
	"github.com/hexpass/hexpass/internal/charset"
	"github.com/hexpass/hexpass/internal/password"
	"github.com/hexpass/hexpass/internal/wordlist"
)

// A Violation is returned from CheckTrials when a trial breaks one of
// the derivation guarantees. The word list and seeds reproduce the
// failing trial exactly.
type Violation struct {
	Property Property
	Words    []string
	Seed1    uint64
	Seed2    uint64
	Got      string
}

// Error implements error.
func (v *Violation) Error() string {
	return fmt.Sprintf("trial with seeds (%d, %d): %q violates %s", v.Seed1, v.Seed2, v.Got, v.Property)
}

// A Trial is a single scripted derivation: a word list plus the PCG
// seeds that drive it. RunTrials fills in the outcome.
type Trial struct {
	Words    []string
	Seed1    uint64
	Seed2    uint64
	Password password.Password
	Err      error
}

var (
	hexDigits = charset.New("0123456789abcdef")
	symbols   = charset.New(password.Symbols)
	uppercase = charset.New(strings.ToUpper(string(password.Capitalizable.Items())))
)

// GenTrials generates a randomized batch of derivation trials drawn
// from the built-in corpus.
func GenTrials(r *rand.Rand) []Trial {
	corpus := wordlist.Default().Words()
	numTrials := r.IntN(128) + 128 // 128-255 trials per batch
	trials := make([]Trial, numTrials)
	for i := range trials {
		words := make([]string, r.IntN(64)+1) // 1-64 words per list
		for j := range words {
			word := corpus[r.IntN(len(corpus))]
			if r.IntN(8) == 0 {
				// Sprinkle in untrimmed words; the pipeline trims them.
				word = "  " + word + " "
			}
			words[j] = word
		}
		trials[i] = Trial{
			Words: words,
			Seed1: r.Uint64(),
			Seed2: r.Uint64(),
		}
	}
	return trials
}

// RunTrials derives a password for each trial, recording the outcome in
// place.
func RunTrials(logger *slog.Logger, trials []Trial) {
	for i := range trials {
		if i%100 == 0 {
			logger.Debug("running trials", "trials_complete", i, "trials_left", len(trials)-i)
		}
		t := &trials[i]
		t.Password, t.Err = password.Generate(t.Words, rand.New(rand.NewPCG(t.Seed1, t.Seed2)))
	}
}

// CheckTrials verifies that every completed trial satisfies the
// derivation guarantees: block formatting, exactly one uppercase letter,
// exactly one symbol, a lowercase hex body, and seed determinism. When
// no violations are found, CheckTrials also returns the fraction of
// trials that derived a password (as a measure of liveness; derivation
// is allowed to give up cleanly on pathological samples).
//
// If verification fails, the returned error will be a *Violation.
func CheckTrials(trials []Trial) (float64, error) {
	var successes, total float64
	for i := range trials {
		total++
		t := &trials[i]
		if t.Err != nil {
			// The only legitimate failure on a non-empty word list is
			// running out of capitalizable characters.
			if !errors.Is(t.Err, password.ErrDerivationImpossible) {
				return 0, violation(t, CleanFailure, t.Err.Error())
			}
			continue
		}
		successes++
		if err := checkTrial(t); err != nil {
			return 0, err
		}
	}
	return successes / total, nil
}

func checkTrial(t *Trial) error {
	formatted := t.Password.String()
	compact := t.Password.Compact()

	if len(formatted) != 19 || len(compact) != 16 {
		return violation(t, BlockFormat, formatted)
	}
	for _, i := range []int{4, 9, 14} {
		if formatted[i] != ' ' {
			return violation(t, BlockFormat, formatted)
		}
	}
	if strings.ReplaceAll(formatted, " ", "") != compact {
		return violation(t, BlockFormat, formatted)
	}

	var uppers, syms int
	for _, c := range compact {
		switch {
		case hexDigits.Contains(c):
		case uppercase.Contains(c):
			uppers++
		case symbols.Contains(c):
			syms++
		default:
			return violation(t, HexBody, compact)
		}
	}
	if uppers != 1 {
		return violation(t, OneUppercase, compact)
	}
	if syms != 1 {
		return violation(t, OneSymbol, compact)
	}

	// Re-deriving with the same seeds must reproduce the password
	// exactly, even after the word list is pre-trimmed.
	trimmed := make([]string, len(t.Words))
	for i, w := range t.Words {
		trimmed[i] = strings.TrimSpace(w)
	}
	again, err := password.Generate(trimmed, rand.New(rand.NewPCG(t.Seed1, t.Seed2)))
	if err != nil || again.Compact() != compact {
		return violation(t, Deterministic, compact)
	}
	return nil
}

func violation(t *Trial, p Property, got string) *Violation {
	assert.Unreachable("Password derivation violated a guarantee", map[string]any{
		"property": string(p),
		"got":      got,
		"seed1":    t.Seed1,
		"seed2":    t.Seed2,
	})
	return &Violation{
		Property: p,
		Words:    t.Words,
		Seed1:    t.Seed1,
		Seed2:    t.Seed2,
		Got:      got,
	}
}
