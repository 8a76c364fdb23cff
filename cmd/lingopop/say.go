package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lingopop/internal/audio"
)

func newSayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "say <text>",
		Short: "Synthesize speech for a word, phrase or example sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			cfg, err := loadConfig()
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

			speech := audio.NewCache(client).Get(cmd.Context(), text)
			path, err := audio.NewFileSink(cfg.Outputs.AudioDirectory).Play(text, speech)
			if err != nil {
				if errors.Is(err, audio.ErrAbsentSpeech) {
					fmt.Fprintf(cmd.OutOrStdout(), "No audio is available for %q right now.\n", text)
					return nil
				}
				return fmt.Errorf("sink.Play() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote audio for %q to %s\n", text, path)
			return nil
		},
	}
	return cmd
}
