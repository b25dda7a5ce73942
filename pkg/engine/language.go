package engine

import (
	"github.com/abadojack/whatlanggo"
)

// Undetermined is the language tag reported when detection is disabled or
// inconclusive.
const Undetermined = "und"

// DetectLanguage returns the best-guess language tag for text, preferring
// the two-letter code when one exists.
func (e *Engine) DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return Undetermined
	}

	if tag := info.Lang.Iso6391(); tag != "" {
		return tag
	}

	if tag := info.Lang.Iso6393(); tag != "" {
		return tag
	}

	return Undetermined
}
