// Package loader fills a trie.Index from a plain text dictionary.
//
// Each line holds a key, optionally followed by a tab and the value to store
// for it. Without a value the original spelling of the key is stored, so a
// folded key such as "jurgen" still answers with "Jürgen". Blank lines and
// lines starting with '#' are skipped.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	trie "github.com/sarthakjha889/go-fuzzy-trie"
)

// ErrMalformedLine is returned for a line whose key is empty.
var ErrMalformedLine = errors.New("malformed dictionary line")

// Options control how keys are folded before insertion. Queries must be
// folded with the same options.
type Options struct {
	Normalise     bool
	CaseSensitive bool
}

// Stats summarises a load.
type Stats struct {
	Lines   int
	Entries int
	Skipped int
}

// Key folds s according to the options.
func (o Options) Key(s string) (string, error) {
	if o.Normalise {
		return trie.Fold(s, o.CaseSensitive)
	}
	if !o.CaseSensitive {
		return strings.ToLower(s), nil
	}
	return s, nil
}

// LoadFile opens path and loads it into idx.
func LoadFile(path string, idx *trie.Index[string], opts Options) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	stats, err := Load(f, idx, opts)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", path, err)
	}
	return stats, nil
}

// Load reads dictionary lines from r into idx. Entries read before an error
// stay in the index.
func Load(r io.Reader, idx *trie.Index[string], opts Options) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			stats.Skipped++
			log.Debug().Int("line", stats.Lines).Msg("Skipping line")
			continue
		}

		word, value, found := strings.Cut(line, "\t")
		word = strings.TrimSpace(word)
		if word == "" {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, ErrMalformedLine)
		}
		if !found || value == "" {
			value = word
		}

		key, err := opts.Key(word)
		if err != nil {
			return stats, fmt.Errorf("line %d: failed to fold %q: %w", stats.Lines, word, err)
		}
		if idx.PutAll(key, value) {
			stats.Entries++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read dictionary: %w", err)
	}

	log.Info().
		Int("lines", stats.Lines).
		Int("entries", stats.Entries).
		Int("skipped", stats.Skipped).
		Msg("Loaded dictionary")
	return stats, nil
}
