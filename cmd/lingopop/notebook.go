package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lingopop/internal/cli"
	"github.com/at-ishikawa/lingopop/internal/entry"
	"github.com/at-ishikawa/lingopop/internal/story"
)

type SortFlag string

// Set implements pflag.Value.
func (s *SortFlag) Set(v string) error {
	switch v {
	case string(SortDescending):
		*s = SortDescending
	case string(SortAscending):
		*s = SortAscending
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, SortDescending, SortAscending)
	}
	return nil
}

// String implements pflag.Value.
func (s *SortFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SortFlag) Type() string {
	return "SortFlag"
}

var (
	_ pflag.Value = (*SortFlag)(nil)
)

const (
	SortDescending SortFlag = "desc"
	SortAscending  SortFlag = "asc"
)

func newNotebookCommand() *cobra.Command {
	notebookCommands := &cobra.Command{
		Use:   "notebook",
		Short: "Manage saved notebook entries",
	}

	sortFlag := SortDescending
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all saved entries",
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

			entries := store.Entries()
			if sortFlag == SortAscending {
				reverseEntries(entries)
			}
			cli.RenderNotebook(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	listCmd.Flags().Var(&sortFlag, "sort", "Sort order for the output, newest first by default. Options: asc, desc")

	removeCmd := &cobra.Command{
		Use:   "remove <entry id>",
		Short: "Remove an entry from the notebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

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

			removed, ok := store.Find(id)
			if err := store.Remove(id); err != nil {
				return fmt.Errorf("store.Remove(%s) > %w", id, err)
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %q\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q (%d entries left)\n", removed.Term, store.Len())
			return nil
		},
	}

	var exportPath string
	var exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the notebook as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFormat != "json" {
				return fmt.Errorf("unsupported export format %q, only json is supported", exportFormat)
			}

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

			if exportPath == "" {
				if err := store.Export(cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("store.Export() > %w", err)
				}
				return nil
			}

			file, err := os.Create(exportPath)
			if err != nil {
				return fmt.Errorf("os.Create(%s) > %w", exportPath, err)
			}
			defer func() {
				_ = file.Close()
			}()
			if err := store.Export(file); err != nil {
				return fmt.Errorf("store.Export() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", store.Len(), exportPath)
			return nil
		},
	}
	exportCmd.Flags().StringVar(&exportPath, "output", "", "Write the export to a file instead of stdout")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format")

	var generatePDF bool
	storyCmd := &cobra.Command{
		Use:   "story",
		Short: "Generate a short story from all saved terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			selection, err := loadSelection(cfg)
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
				fmt.Fprintln(cmd.OutOrStdout(), "Your notebook is empty. Save some entries before generating a story.")
				return nil
			}

			client, err := newInferenceClient(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			native, target := selection.Languages()
			text, err := story.NewGenerator(client).Generate(cmd.Context(), store.Entries(), native, target)
			if err != nil {
				return fmt.Errorf("story.Generate() > %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			writtenPath, err := story.NewWriter(cfg.Outputs.StoryDirectory).Write(text, generatePDF)
			if err != nil {
				return fmt.Errorf("story.Write() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote the story to %s\n", writtenPath)
			return nil
		},
	}
	storyCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Generate PDF output in addition to markdown")

	notebookCommands.AddCommand(listCmd, removeCmd, exportCmd, storyCmd)
	return notebookCommands
}

func reverseEntries(entries []entry.Entry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
