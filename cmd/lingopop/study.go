package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lingopop/internal/cli"
)

func newStudyCommand() *cobra.Command {
	var shuffle bool
	cmd := &cobra.Command{
		Use:   "study",
		Short: "Study your notebook entries as flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			if store.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Your notebook is empty. Save some entries before studying.")
				return nil
			}

			studyCLI := cli.NewStudyCLI(store.Entries(), os.Stdin, cmd.OutOrStdout())
			if shuffle {
				studyCLI.ShuffleCards()
			}
			if err := studyCLI.Run(); err != nil {
				return fmt.Errorf("studyCLI.Run() > %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle the cards before studying")
	return cmd
}
