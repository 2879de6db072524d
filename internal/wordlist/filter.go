package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typeable accepts non-empty words made of lowercase a-z and apostrophes,
// the only letters the game reads from the keyboard.
func Typeable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && ch != '\'' {
			return false
		}
	}
	return true
}

// Normalize trims and lowercases a raw entry.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Filter normalizes the words, keeps those accepted by keep and drops
// duplicates, preserving the first occurrence order.
func Filter(words []string, keep FilterFunc) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = Normalize(w)
		if !keep(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
