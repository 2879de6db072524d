package wordlist

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	words, err := scanWords(bufio.NewScanner(strings.NewReader(defaultWords)))
	if err != nil {
		return nil, err
	}
	return NewCatalog("built-in", words)
}
