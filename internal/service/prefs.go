package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/lunamark/weatherdeck/internal/domain"
	"github.com/lunamark/weatherdeck/internal/kvstore"
)

// fontPairingCount is the number of heading/body font pairings clients cycle
// through. The index is persisted here; the pairings themselves are a client
// asset.
const fontPairingCount = 23

const (
	metricPrimaryKey = "metric_primary"
	fontIndexKey     = "font_index"
	localeIndexKey   = "locale_index"
)

// Preferences holds the persisted display settings: which unit system leads,
// which font pairing is active, and which locale digits render in.
type Preferences struct {
	kv     kvstore.Store
	logger *slog.Logger
}

// PreferenceValues is a point-in-time view of the stored preferences.
type PreferenceValues struct {
	MetricPrimary bool   `json:"metricPrimary"`
	FontIndex     int    `json:"fontIndex"`
	LocaleIndex   int    `json:"localeIndex"`
	LocaleTag     string `json:"localeTag"`
}

func NewPreferences(kv kvstore.Store, logger *slog.Logger) *Preferences {
	return &Preferences{kv: kv, logger: logger}
}

// Load reads all preferences, substituting defaults for missing or corrupt
// entries: metric-first, first font pairing, first locale.
func (p *Preferences) Load(ctx context.Context) PreferenceValues {
	v := PreferenceValues{
		MetricPrimary: p.loadBool(ctx, metricPrimaryKey, true),
		FontIndex:     p.loadIndex(ctx, fontIndexKey, fontPairingCount),
		LocaleIndex:   p.loadIndex(ctx, localeIndexKey, len(domain.SupportedLocales)),
	}
	v.LocaleTag = domain.SupportedLocales[v.LocaleIndex].Tag
	return v
}

// Locale returns the active locale.
func (p *Preferences) Locale(ctx context.Context) domain.SupportedLocale {
	return domain.SupportedLocales[p.loadIndex(ctx, localeIndexKey, len(domain.SupportedLocales))]
}

// ToggleUnits flips which unit system leads and persists the result.
func (p *Preferences) ToggleUnits(ctx context.Context) PreferenceValues {
	next := !p.loadBool(ctx, metricPrimaryKey, true)
	p.save(ctx, metricPrimaryKey, strconv.FormatBool(next))
	return p.Load(ctx)
}

// CycleFont advances to the next font pairing, wrapping at the end.
func (p *Preferences) CycleFont(ctx context.Context) PreferenceValues {
	next := (p.loadIndex(ctx, fontIndexKey, fontPairingCount) + 1) % fontPairingCount
	p.save(ctx, fontIndexKey, strconv.Itoa(next))
	return p.Load(ctx)
}

// CycleLocale advances to the next locale, wrapping at the end.
func (p *Preferences) CycleLocale(ctx context.Context) PreferenceValues {
	next := (p.loadIndex(ctx, localeIndexKey, len(domain.SupportedLocales)) + 1) % len(domain.SupportedLocales)
	p.save(ctx, localeIndexKey, strconv.Itoa(next))
	return p.Load(ctx)
}

func (p *Preferences) loadBool(ctx context.Context, key string, fallback bool) bool {
	raw, err := p.kv.Get(ctx, key)
	if err != nil {
		p.warnUnlessMissing(key, err)
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.logger.Warn("preference corrupt, using default", "key", key, "value", raw)
		return fallback
	}
	return v
}

// loadIndex reads a stored index and clamps it into [0, count) so a stale
// value from an older build with more entries cannot panic a lookup.
func (p *Preferences) loadIndex(ctx context.Context, key string, count int) int {
	raw, err := p.kv.Get(ctx, key)
	if err != nil {
		p.warnUnlessMissing(key, err)
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		p.logger.Warn("preference corrupt, using default", "key", key, "value", raw)
		return 0
	}
	return v % count
}

func (p *Preferences) save(ctx context.Context, key, value string) {
	if err := p.kv.Set(ctx, key, value); err != nil {
		p.logger.Warn("preference write failed", "key", key, "error", err)
	}
}

func (p *Preferences) warnUnlessMissing(key string, err error) {
	if !errors.Is(err, kvstore.ErrNotFound) {
		p.logger.Warn("preference read failed", "key", key, "error", err)
	}
}
