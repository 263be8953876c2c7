package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hexpass/hexpass/internal/password"
	"github.com/hexpass/hexpass/internal/wordlist"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(cmd.Flags())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	list, err := loadList(cmd)
	if err != nil {
		logger.Error("load word list failed", "err", err)
		os.Exit(1)
	}
	logger.Debug("loaded word list", "words", list.Len())

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	pw, err := password.Generate(list.Words(), r)
	if err != nil {
		logger.Error("derivation failed", "err", err)
		os.Exit(1)
	}

	if orFatal(cmd.Flags().GetBool("compact")) {
		fmt.Println(pw.Compact())
		return
	}
	fmt.Println(pw)
}

// loadList picks the word source: an object storage bucket when
// --s3-bucket is set, a local file when --wordlist is set, and the
// built-in corpus otherwise.
func loadList(cmd *cobra.Command) (wordlist.List, error) {
	if bucket := orFatal(cmd.Flags().GetString("s3-bucket")); bucket != "" {
		b := wordlist.NewBucket(wordlist.BucketConfig{
			Endpoint: orFatal(cmd.Flags().GetString("s3-addr")),
			Region:   orFatal(cmd.Flags().GetString("s3-region")),
			Bucket:   bucket,
			Key:      orFatal(cmd.Flags().GetString("s3-key")),
			User:     orFatal(cmd.Flags().GetString("s3-user")),
			Password: orFatal(cmd.Flags().GetString("s3-pass")),
			Timeout:  orFatal(cmd.Flags().GetDuration("s3-timeout")),
		})
		return b.Load(cmd.Context())
	}
	if path := orFatal(cmd.Flags().GetString("wordlist")); path != "" {
		return wordlist.FromFile(path)
	}
	return wordlist.Default(), nil
}

func init() {
	rootCmd.Flags().Bool("compact", false, "print the password without spaces")
	rootCmd.Flags().String("wordlist", "", "path to a word list file, one word per line")
	rootCmd.Flags().String("s3-addr", "minio:9000", "object storage address")
	rootCmd.Flags().String("s3-region", "us-east-1", "object storage region")
	rootCmd.Flags().String("s3-bucket", "", "object storage bucket holding the word list")
	rootCmd.Flags().String("s3-key", "words.txt", "object storage key of the word list")
	rootCmd.Flags().String("s3-user", "admin", "object storage user")
	rootCmd.Flags().String("s3-pass", "password", "object storage password")
	rootCmd.Flags().Duration("s3-timeout", time.Minute, "object storage timeout")
}
