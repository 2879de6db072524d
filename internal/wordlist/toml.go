package wordlist

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type tomlWords struct {
	VecOfWords []string `toml:"vec_of_words"`
}

// LoadTOML reads the vec_of_words array of a TOML file.
func LoadTOML(path string) ([]string, error) {
	var doc tomlWords
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode word list %s: %w", path, err)
	}
	if len(doc.VecOfWords) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return doc.VecOfWords, nil
}
