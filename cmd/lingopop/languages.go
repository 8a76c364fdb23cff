package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lingopop/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	var swap bool
	languageCommands := &cobra.Command{
		Use:   "languages",
		Short: "Show and change the language pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			selection, err := loadSelection(cfg)
			if err != nil {
				return err
			}
			if swap {
				selection.Swap()
				if err := language.SaveSelection(cfg.Languages.StatePath, selection); err != nil {
					return fmt.Errorf("language.SaveSelection() > %w", err)
				}
			}

			native, target := selection.Languages()
			fmt.Fprintf(cmd.OutOrStdout(), "Learning %s %s from %s %s\n\n", target.Flag, target.Name, native.Flag, native.Name)
			for _, lang := range language.SupportedLanguages {
				marker := " "
				switch lang.Code {
				case native.Code:
					marker = "*"
				case target.Code:
					marker = ">"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s)\n", marker, lang.Flag, lang.Name, lang.Code)
			}
			return nil
		},
	}
	languageCommands.Flags().BoolVar(&swap, "swap", false, "Swap the native and target languages first")

	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap the native and target languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			selection, err := loadSelection(cfg)
			if err != nil {
				return err
			}

			selection.Swap()
			if err := language.SaveSelection(cfg.Languages.StatePath, selection); err != nil {
				return fmt.Errorf("language.SaveSelection() > %w", err)
			}

			native, target := selection.Languages()
			fmt.Fprintf(cmd.OutOrStdout(), "Now learning %s %s from %s %s\n", target.Flag, target.Name, native.Flag, native.Name)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <native code> <target code>",
		Short: "Set the native and target languages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			native, ok := language.ByCode(args[0])
			if !ok {
				return fmt.Errorf("unsupported language code %q", args[0])
			}
			target, ok := language.ByCode(args[1])
			if !ok {
				return fmt.Errorf("unsupported language code %q", args[1])
			}
			if native.Code == target.Code {
				return fmt.Errorf("the native and target languages must differ")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			selection, err := loadSelection(cfg)
			if err != nil {
				return err
			}

			selection.Set(native, target)
			if err := language.SaveSelection(cfg.Languages.StatePath, selection); err != nil {
				return fmt.Errorf("language.SaveSelection() > %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Now learning %s %s from %s %s\n", target.Flag, target.Name, native.Flag, native.Name)
			return nil
		},
	}

	languageCommands.AddCommand(swapCmd, setCmd)
	return languageCommands
}
