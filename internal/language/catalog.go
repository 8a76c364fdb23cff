// Package language provides the catalog of supported languages and the
// session selection of a native and a target language.
package language

// Language is a single supported language.
type Language struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
	Flag string `yaml:"flag" json:"flag"`
}

// SupportedLanguages is the fixed, ordered catalog. The order matters: the
// first two entries are the default native and target selection.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
	{Code: "pt", Name: "Portuguese", Flag: "🇧🇷"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
}

// ByCode returns the catalog language for a code.
func ByCode(code string) (Language, bool) {
	for _, lang := range SupportedLanguages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}
