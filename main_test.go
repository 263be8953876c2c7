package main_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/hexpass/hexpass/internal/buckettest"
	"github.com/hexpass/hexpass/internal/password"
	"github.com/hexpass/hexpass/internal/proptest"
	"github.com/hexpass/hexpass/internal/wordlist"
	"go.akshayshah.org/attest"
)

func TestBucketSourced(t *testing.T) {
	// This is a simple integration test: it doesn't use property-based
	// testing or Antithesis. It mirrors deployments that keep one shared
	// word list in object storage.
	cfg := buckettest.NewBucket(t, []string{"alpha", "bravo", "charlie", "delta", "echo"})

	list, err := wordlist.NewBucket(cfg).Load(t.Context())
	attest.Ok(t, err)
	attest.Equal(t, list.Len(), 5)

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	pw, err := password.Generate(list.Words(), r)
	attest.Ok(t, err)
	attest.Equal(t, len(pw.String()), 19)
}

func TestDerivationGuarantees(t *testing.T) {
	// This is a property-based test. Rather than testing with hard-coded
	// example inputs, we generate a batch of randomized trials, derive a
	// password for each, and verify that every result satisfies the
	// documented guarantees. It's more complex than TestTraditional, but
	// also far more thorough.
	//
	// This test uses the same proptest package as the Antithesis workload
	// (in workload.go). This is a common pattern: factoring out
	// property-based testing helpers lets developers iterate quickly on
	// their workstations, gaining confidence before kicking off a longer
	// run on the Antithesis platform.
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	// First, generate a randomized batch of trials. Each trial is a word
	// list plus the PCG seeds that drive its derivation.
	trials := proptest.GenTrials(r)

	// Then, run every trial and collect the results.
	proptest.RunTrials(buckettest.NewLogger(t), trials)

	// Finally, verify the results: block formatting, exactly one
	// uppercase letter, exactly one symbol, a lowercase hex body, and
	// seed determinism.
	_, err := proptest.CheckTrials(trials)
	if err != nil {
		// Violations carry everything needed to replay the failing trial.
		if verr := new(proptest.Violation); errors.As(err, &verr) {
			t.Logf("replay with words=%q and seeds (%d, %d)", verr.Words, verr.Seed1, verr.Seed2)
		}
	}
	attest.Ok(t, err, attest.Sprintf("derivation guarantee violated"))
}
