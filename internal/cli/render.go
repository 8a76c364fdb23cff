package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

// RenderEntry writes one lookup result card. alreadySaved marks a term the
// notebook already contains (case-insensitive match).
func RenderEntry(w io.Writer, e entry.Entry, alreadySaved bool) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	faint := color.New(color.Faint)

	_, _ = bold.Fprintf(w, "%s", e.Term)
	if e.Phonetic != "" {
		_, _ = cyan.Fprintf(w, "  %s", e.Phonetic)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", e.Definition)

	for _, example := range e.Examples {
		fmt.Fprintf(w, "  - %s\n", example.Target)
		_, _ = faint.Fprintf(w, "    %s\n", example.Native)
	}

	if e.UsageNote != "" {
		_, _ = bold.Fprintln(w, "Usage note")
		fmt.Fprintf(w, "%s\n", e.UsageNote)
	}

	if e.ImageURL == "" {
		_, _ = faint.Fprintln(w, "(no illustration)")
	} else {
		_, _ = faint.Fprintln(w, "(illustration attached)")
	}
	if alreadySaved {
		_, _ = faint.Fprintln(w, "Already in your notebook")
	}
}

// RenderNotebook writes the saved entries, newest first.
func RenderNotebook(w io.Writer, entries []entry.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Your notebook is empty. Look up words and save them to study later!")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(w, "My Notebook (%d)\n", len(entries))
	for _, e := range entries {
		_, _ = bold.Fprintf(w, "%s", e.Term)
		fmt.Fprintf(w, "  %s\n", e.Definition)
		_, _ = faint.Fprintf(w, "  id=%s saved=%s %s->%s\n",
			e.ID,
			time.UnixMilli(e.CreatedAt).Format("2006-01-02"),
			e.NativeLang,
			e.TargetLang,
		)
	}
}
