// Package locale carries the bilingual concerns of the document pipeline:
// language and direction resolution, Cairo wall-clock formatting, localized
// number and label rendering, and amount-in-words spelling.
package locale

import "strings"

// Lang is a resolved document language.
type Lang string

const (
	// English is the fallback language.
	English Lang = "en"
	// Arabic triggers RTL layout and Arabic label remapping.
	Arabic Lang = "ar"
)

// Resolve maps arbitrary caller input to a supported language. Resolution is
// prefix based: anything starting with "ar" (case-insensitive) is Arabic,
// everything else is English.
func Resolve(input string) Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(input)), "ar") {
		return Arabic
	}
	return English
}

// Dir returns the writing direction for HTML attributes.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// IsRTL reports whether the language lays out right to left.
func (l Lang) IsRTL() bool { return l == Arabic }
