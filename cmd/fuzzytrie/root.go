package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	trie "github.com/sarthakjha889/go-fuzzy-trie"
	"github.com/sarthakjha889/go-fuzzy-trie/internal/config"
	"github.com/sarthakjha889/go-fuzzy-trie/internal/loader"
)

// app is the state shared by all subcommands once the dictionary is loaded.
type app struct {
	cfg   *config.Config
	opts  loader.Options
	index *trie.Index[string]
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configPath, dictPath, logLevel string

	root := &cobra.Command{
		Use:           "fuzzytrie",
		Short:         "Exact, prefix and fuzzy lookups over a dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dict") {
				cfg.Dictionary = dictPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			return a.init(cfg)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVar(&dictPath, "dict", "", "dictionary file, one key per line")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newGetCmd(a), newPrefixCmd(a), newFuzzyCmd(a), newKeysCmd(a))
	return root
}

func (a *app) init(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Dictionary == "" {
		return errors.New("no dictionary given, use --dict or FUZZYTRIE_DICTIONARY")
	}

	a.cfg = cfg
	a.opts = loader.Options{Normalise: cfg.Normalise, CaseSensitive: cfg.CaseSensitive}
	a.index = trie.New[string]()
	if _, err := loader.LoadFile(cfg.Dictionary, a.index, a.opts); err != nil {
		return err
	}
	log.Debug().Int("values", a.index.Size()).Str("dictionary", cfg.Dictionary).Msg("Index ready")
	return nil
}

// query folds s the same way the dictionary keys were folded.
func (a *app) query(s string) (string, error) {
	q, err := a.opts.Key(s)
	if err != nil {
		return "", fmt.Errorf("failed to fold query: %w", err)
	}
	return q, nil
}

// print writes results sorted, one per line, honouring the configured limit.
func (a *app) print(cmd *cobra.Command, results []string) {
	sort.Strings(results)
	if a.cfg.Limit > 0 && len(results) > a.cfg.Limit {
		results = results[:a.cfg.Limit]
	}
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
}
