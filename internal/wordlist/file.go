package wordlist

import (
	"fmt"
	"os"
)

// FromFile loads a word list from a local file.
func FromFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return List{}, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
