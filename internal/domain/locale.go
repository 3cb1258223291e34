package domain

import "strings"

// SupportedLocale describes a display locale: its BCP-47 tag, a flag emoji for
// the locale switcher, and optional digit-rendering overrides.
type SupportedLocale struct {
	Tag        string `json:"tag"`
	Flag       string `json:"flag"`
	NativeZero rune   `json:"nativeZero,omitempty"` // code point of the locale's zero digit; 0 keeps ASCII digits
	DecimalSep string `json:"decimalSep,omitempty"` // override separator; empty keeps '.'
}

// SupportedLocales is the fixed locale cycling order. The index is persisted,
// so entries must not be reordered.
var SupportedLocales = []SupportedLocale{
	{Tag: "mg", Flag: "\U0001F1F2\U0001F1EC", DecimalSep: ","},
	{Tag: "ar", Flag: "\U0001F1F8\U0001F1E6", NativeZero: 0x0660, DecimalSep: "٫"},
	{Tag: "en", Flag: "\U0001F1EC\U0001F1E7"},
	{Tag: "es", Flag: "\U0001F1EA\U0001F1F8", DecimalSep: ","},
	{Tag: "fr", Flag: "\U0001F1EB\U0001F1F7", DecimalSep: ","},
	{Tag: "hi", Flag: "\U0001F1EE\U0001F1F3", NativeZero: 0x0966},
	{Tag: "ne", Flag: "\U0001F1F3\U0001F1F5", NativeZero: 0x0966},
	{Tag: "zh", Flag: "\U0001F1E8\U0001F1F3"},
}

// LocalizeDigits rewrites a formatted string for the given locale: the decimal
// separator is substituted first, then each ASCII digit is shifted to the
// locale's native digit block. Non-digit characters pass through untouched.
func LocalizeDigits(s string, locale SupportedLocale) string {
	if locale.DecimalSep != "" && locale.DecimalSep != "." {
		s = strings.ReplaceAll(s, ".", locale.DecimalSep)
	}

	if locale.NativeZero == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(locale.NativeZero + (r - '0'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
