package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/lingopop/internal/entry"
)

func TestRenderEntry(t *testing.T) {
	e := entry.Entry{
		ID:         "id-hola",
		Term:       "hola",
		Phonetic:   "/oʊlə/",
		Definition: "a greeting",
		Examples: []entry.Example{
			{Target: "¡Hola!", Native: "Hello!"},
		},
		UsageNote: "Casual and formal alike.",
	}

	t.Run("renders all fields", func(t *testing.T) {
		var out bytes.Buffer
		RenderEntry(&out, e, false)

		output := out.String()
		assert.Contains(t, output, "hola")
		assert.Contains(t, output, "/oʊlə/")
		assert.Contains(t, output, "a greeting")
		assert.Contains(t, output, "¡Hola!")
		assert.Contains(t, output, "Hello!")
		assert.Contains(t, output, "Casual and formal alike.")
		assert.Contains(t, output, "(no illustration)")
		assert.NotContains(t, output, "Already in your notebook")
	})

	t.Run("marks an already saved term", func(t *testing.T) {
		var out bytes.Buffer
		RenderEntry(&out, e, true)
		assert.Contains(t, out.String(), "Already in your notebook")
	})

	t.Run("attached illustration", func(t *testing.T) {
		withImage := e
		withImage.ImageURL = "data:image/png;base64,AQID"
		var out bytes.Buffer
		RenderEntry(&out, withImage, false)
		assert.Contains(t, out.String(), "(illustration attached)")
	})

	t.Run("optional fields are omitted", func(t *testing.T) {
		bare := entry.Entry{Term: "hola", Definition: "a greeting"}
		var out bytes.Buffer
		RenderEntry(&out, bare, false)

		output := out.String()
		assert.NotContains(t, output, "Usage note")
		assert.Contains(t, output, "(no illustration)")
	})
}

func TestRenderNotebook(t *testing.T) {
	t.Run("empty notebook prints a hint", func(t *testing.T) {
		var out bytes.Buffer
		RenderNotebook(&out, nil)
		assert.Contains(t, out.String(), "Your notebook is empty")
	})

	t.Run("lists entries with their ids", func(t *testing.T) {
		var out bytes.Buffer
		RenderNotebook(&out, []entry.Entry{
			{ID: "id-adios", Term: "adios", Definition: "a farewell", NativeLang: "en", TargetLang: "es", CreatedAt: 1700000000000},
			{ID: "id-hola", Term: "hola", Definition: "a greeting", NativeLang: "en", TargetLang: "es", CreatedAt: 1690000000000},
		})

		output := out.String()
		assert.Contains(t, output, "My Notebook (2)")
		assert.Contains(t, output, "adios")
		assert.Contains(t, output, "id=id-hola")
		assert.Contains(t, output, "en->es")
	})
}
