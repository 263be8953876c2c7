package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hexpass/hexpass/internal/password"
	"github.com/hexpass/hexpass/internal/wordlist"
)

// A deliberately flag-free entry point: run it with no arguments and it
// prints exactly one password derived from the built-in corpus.
func main() {
	logger := slog.Default()
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	pw, err := password.Generate(wordlist.Default().Words(), r)
	if err != nil {
		logger.Error("derivation failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(pw)
}
