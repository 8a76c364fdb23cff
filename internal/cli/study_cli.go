// Package cli implements the interactive terminal sessions and the rendering
// of lookup results and the notebook.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

// errEnd signals the end of an interactive session
var errEnd = errors.New("end of the session")

// StudyCLI manages the interactive flashcard study session: front shows the
// term, back reveals phonetic, definition and the first example. The deck
// wraps around; there is no scoring or scheduling.
type StudyCLI struct {
	cards   []entry.Entry
	index   int
	flipped bool

	stdinReader *bufio.Reader
	writer      io.Writer

	bold  *color.Color
	faint *color.Color
	cyan  *color.Color
}

func NewStudyCLI(cards []entry.Entry, in io.Reader, out io.Writer) *StudyCLI {
	return &StudyCLI{
		cards:       cards,
		stdinReader: bufio.NewReader(in),
		writer:      out,
		bold:        color.New(color.Bold),
		faint:       color.New(color.Faint),
		cyan:        color.New(color.FgCyan),
	}
}

// ShuffleCards shuffles the deck.
func (c *StudyCLI) ShuffleCards() {
	rand.Shuffle(len(c.cards), func(i, j int) {
		c.cards[i], c.cards[j] = c.cards[j], c.cards[i]
	})
}

// CurrentCard returns the card being shown.
func (c *StudyCLI) CurrentCard() (entry.Entry, bool) {
	if len(c.cards) == 0 {
		return entry.Entry{}, false
	}
	return c.cards[c.index], true
}

// Flip toggles between the front and the back of the current card.
func (c *StudyCLI) Flip() {
	c.flipped = !c.flipped
}

// Next advances to the next card, wrapping around the deck, and shows its front.
func (c *StudyCLI) Next() {
	if len(c.cards) == 0 {
		return
	}
	c.flipped = false
	c.index = (c.index + 1) % len(c.cards)
}

// Run drives the interactive session until the user quits.
func (c *StudyCLI) Run() error {
	if len(c.cards) == 0 {
		fmt.Fprintln(c.writer, "No words to study. Add words to your notebook first!")
		return nil
	}

	for {
		if err := c.session(); err != nil {
			if errors.Is(err, errEnd) {
				return nil
			}
			return err
		}
	}
}

func (c *StudyCLI) session() error {
	card, _ := c.CurrentCard()
	c.renderCard(card)

	_, _ = c.faint.Fprint(c.writer, "[enter] flip, [n] next, [q] quit: ")
	input, err := c.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	switch strings.TrimSpace(input) {
	case "":
		c.Flip()
	case "n":
		c.Next()
	case "q":
		return errEnd
	}
	return nil
}

func (c *StudyCLI) renderCard(card entry.Entry) {
	fmt.Fprintf(c.writer, "\n%d / %d\n", c.index+1, len(c.cards))
	if !c.flipped {
		_, _ = c.bold.Fprintf(c.writer, "  %s\n", card.Term)
		if card.ImageURL != "" {
			_, _ = c.faint.Fprintln(c.writer, "  (illustration available)")
		}
		return
	}

	_, _ = c.bold.Fprintf(c.writer, "  %s\n", card.Term)
	if card.Phonetic != "" {
		_, _ = c.cyan.Fprintf(c.writer, "  %s\n", card.Phonetic)
	}
	fmt.Fprintf(c.writer, "  %s\n", card.Definition)
	if len(card.Examples) > 0 {
		_, _ = c.faint.Fprintf(c.writer, "  %q\n", card.Examples[0].Target)
	}
}
