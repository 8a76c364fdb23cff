// Package entry provides the dictionary entry domain model and the lookup
// orchestration that assembles entries from the inference backend.
package entry

// Example is one example sentence pair of an entry. The JSON field names
// match the notebook export format.
type Example struct {
	Target string `json:"target" yaml:"target"`
	Native string `json:"native" yaml:"native"`
}

// Entry is one dictionary lookup result. Entries are immutable once
// assembled: the notebook only ever adds or removes whole records.
type Entry struct {
	ID string `json:"id" yaml:"id"`
	// Term is the original search input, not normalized or corrected.
	Term     string `json:"term" yaml:"term"`
	Phonetic string `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`

	Definition string    `json:"definition" yaml:"definition"`
	Examples   []Example `json:"examples" yaml:"examples"`
	UsageNote  string    `json:"usageNote" yaml:"usage_note"`

	// ImageURL is a data URI, empty when illustration generation failed.
	ImageURL string `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`

	// Language codes captured at creation time. Changing the session
	// selection later does not affect saved entries.
	NativeLang string `json:"nativeLang" yaml:"native_lang"`
	TargetLang string `json:"targetLang" yaml:"target_lang"`

	// CreatedAt is epoch milliseconds.
	CreatedAt int64 `json:"createdAt" yaml:"created_at"`
}
