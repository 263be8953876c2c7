package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed words.txt
var corpus string

var defaultList = mustParse(corpus)

// Default returns the built-in word list compiled into the binary.
func Default() List {
	return defaultList
}

func mustParse(s string) List {
	list, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("embedded word list: %v", err))
	}
	return list
}
