package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sarthakjha889/go-fuzzy-trie/internal/config"
	"github.com/sarthakjha889/go-fuzzy-trie/levenshtein"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the values stored for exactly key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.query(args[0])
			if err != nil {
				return err
			}
			a.print(cmd, a.index.GetAll(key).Slice())
			return nil
		},
	}
}

func newPrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <fragment>",
		Short: "Print the values of every key starting with fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment, err := a.query(args[0])
			if err != nil {
				return err
			}
			a.print(cmd, a.index.GetAny(fragment).Slice())
			return nil
		},
	}
}

func newFuzzyCmd(a *app) *cobra.Command {
	distance := config.AutoDistance
	cmd := &cobra.Command{
		Use:   "fuzzy <query>",
		Short: "Print the values of every key within an edit distance of query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.query(args[0])
			if err != nil {
				return err
			}
			d := a.cfg.MaxDistance
			if cmd.Flags().Changed("distance") {
				d = distance
			}
			if d < 0 {
				d = levenshtein.MaxDistanceFor(q)
			}
			log.Debug().Str("query", q).Int("distance", d).Msg("Fuzzy lookup")
			a.print(cmd, a.index.GetMatches(levenshtein.New(q, d)).Slice())
			return nil
		},
	}
	cmd.Flags().IntVarP(&distance, "distance", "d", config.AutoDistance,
		"maximum edit distance, negative picks one from the query length")
	return cmd
}

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [fragment]",
		Short: "List stored keys, optionally only those starting with fragment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment := ""
			if len(args) == 1 {
				var err error
				if fragment, err = a.query(args[0]); err != nil {
					return err
				}
			}
			a.print(cmd, a.index.Keys(fragment))
			return nil
		},
	}
}
