package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lingopop/internal/cli"
	"github.com/at-ishikawa/lingopop/internal/entry"
)

func newLookupCommand() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "lookup <term>",
		Short: "Look up a word or phrase in the target language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			selection, err := loadSelection(cfg)
			if err != nil {
				return err
			}
			client, err := newInferenceClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			native, target := selection.Languages()
			searcher := entry.NewSearcher(entry.NewAssembler(client))
			result, err := searcher.Search(cmd.Context(), term, native, target)
			if err != nil {
				if errors.Is(err, entry.ErrEmptyTerm) {
					return fmt.Errorf("enter a word or phrase to look up")
				}
				return fmt.Errorf("searcher.Search(%s) > %w", term, err)
			}

			cli.RenderEntry(cmd.OutOrStdout(), result, store.ContainsTerm(result.Term))

			if save {
				if err := store.Add(result); err != nil {
					return fmt.Errorf("store.Add() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %q to your notebook (%d entries)\n", result.Term, store.Len())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "Save the result to your notebook")
	return cmd
}
