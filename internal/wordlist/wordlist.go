// Package wordlist loads the word catalog enemies draw their words from.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmpty is returned when a source holds no typeable words.
var ErrEmpty = errors.New("word list is empty")

// Catalog is an immutable list of typeable words.
type Catalog struct {
	words  []string
	source string
}

// NewCatalog filters words down to typeable entries.
func NewCatalog(source string, words []string) (*Catalog, error) {
	kept := Filter(words, Typeable)
	if len(kept) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}
	return &Catalog{words: kept, source: source}, nil
}

// Random returns a uniformly chosen word.
func (c *Catalog) Random(rnd *rand.Rand) string {
	return c.words[rnd.Intn(len(c.words))]
}

// Len returns the number of words.
func (c *Catalog) Len() int { return len(c.words) }

// Words returns a copy of the words.
func (c *Catalog) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)
	return out
}

// Source names where the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// Load reads a catalog, picking the format from the file extension:
// .toml (vec_of_words), .lua (words table or function), anything else one
// word per line. An empty path loads the built-in list.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	var (
		words []string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		words, err = LoadTOML(path)
	case ".lua":
		words, err = LoadLua(path)
	default:
		words, err = LoadWords(path)
	}
	if err != nil {
		return nil, err
	}
	return NewCatalog(path, words)
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		// Best-effort close for read-only word list.
		_ = file.Close()
	}()
	return scanWords(bufio.NewScanner(file))
}

func scanWords(scanner *bufio.Scanner) ([]string, error) {
	var words []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
