package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "hexpass",
	Short: "Generate a typable password from a word list",
	Long:  "Generate a single typable password by hashing a random four-word phrase and sampling characters from the digest.",
	Args:  cobra.NoArgs,
	Run:   runGenerate,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "emit logs in JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "emit debug logs")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(flags *pflag.FlagSet) (*slog.Logger, error) {
	level := slog.LevelInfo
	if orFatal(flags.GetBool("verbose")) {
		level = slog.LevelDebug
	}
	// Logs go to stderr; stdout carries nothing but the password line.
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})
	if orFatal(flags.GetBool("json")) {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: false,
			Level:     level,
		})
	}
	return slog.New(handler), nil
}

func orFatal[T any](val T, err error) T {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return val
}
