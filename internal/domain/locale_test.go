package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localeByTag(t *testing.T, tag string) SupportedLocale {
	t.Helper()
	for _, loc := range SupportedLocales {
		if loc.Tag == tag {
			return loc
		}
	}
	t.Fatalf("locale %q not in SupportedLocales", tag)
	return SupportedLocale{}
}

func TestSupportedLocales_CyclingOrder(t *testing.T) {
	tags := make([]string, len(SupportedLocales))
	for i, loc := range SupportedLocales {
		tags[i] = loc.Tag
	}
	// Order is significant: persisted indices cycle through this list.
	assert.Equal(t, []string{"mg", "ar", "en", "es", "fr", "hi", "ne", "zh"}, tags)
}

func TestLocalizeDigits_Arabic(t *testing.T) {
	ar := localeByTag(t, "ar")
	require.Equal(t, rune(0x0660), ar.NativeZero)

	got := LocalizeDigits("12.5°C", ar)
	assert.Equal(t, "١٢٫٥°C", got,
		"digits shift to Arabic-Indic, separator swaps, °C untouched")
}

func TestLocalizeDigits_Devanagari(t *testing.T) {
	hi := localeByTag(t, "hi")

	got := LocalizeDigits("1013 hPa", hi)
	assert.Equal(t, "१०१३ hPa", got)
}

func TestLocalizeDigits_SeparatorOnly(t *testing.T) {
	fr := localeByTag(t, "fr")

	got := LocalizeDigits("21.7°C", fr)
	assert.Equal(t, "21,7°C", got, "French keeps ASCII digits but swaps the separator")
}

func TestLocalizeDigits_PassThrough(t *testing.T) {
	en := localeByTag(t, "en")
	assert.Equal(t, "12.5°C", LocalizeDigits("12.5°C", en))

	zh := localeByTag(t, "zh")
	assert.Equal(t, "88%", LocalizeDigits("88%", zh))
}

func TestLocalizeDigits_SeparatorBeforeDigits(t *testing.T) {
	// Both substitutions apply; the inserted separator must not be digit-shifted.
	ar := localeByTag(t, "ar")
	got := LocalizeDigits("0.5", ar)
	assert.Equal(t, "٠٫٥", got)
}
