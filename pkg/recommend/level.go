package recommend

import (
	"fmt"
	"strings"
)

// Level is the ordinal encoding used for "meets or exceeds" comparisons.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "low"
	}
}

// MarshalJSON renders levels as their words, not ordinals.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *Level) UnmarshalJSON(data []byte) error {
	v := strings.Trim(string(data), `"`)
	lvl, ok := ParseLevel(v)
	if !ok {
		return fmt.Errorf("invalid level %q", v)
	}
	*l = lvl
	return nil
}

// synonymLevels maps common free-text wordings the assistant produces onto a level.
var synonymLevels = map[string]Level{
	"basic":     LevelLow,
	"minimal":   LevelLow,
	"light":     LevelLow,
	"budget":    LevelLow,
	"small":     LevelLow,
	"moderate":  LevelMedium,
	"good":      LevelMedium,
	"average":   LevelMedium,
	"standard":  LevelMedium,
	"decent":    LevelMedium,
	"very high": LevelHigh,
	"excellent": LevelHigh,
	"heavy":     LevelHigh,
	"premium":   LevelHigh,
	"intensive": LevelHigh,
	"large":     LevelHigh,
	"maximum":   LevelHigh,
}

// ParseLevel resolves a raw value to a Level. Exact matches win, then the
// synonym table, then a prefix match ("medium-ish" resolves to medium).
// Returns false when the value cannot be resolved at all.
func ParseLevel(raw string) (Level, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "low":
		return LevelLow, true
	case "medium":
		return LevelMedium, true
	case "high":
		return LevelHigh, true
	}
	if lvl, ok := synonymLevels[v]; ok {
		return lvl, true
	}
	switch {
	case strings.HasPrefix(v, "low"):
		return LevelLow, true
	case strings.HasPrefix(v, "medium"):
		return LevelMedium, true
	case strings.HasPrefix(v, "high"):
		return LevelHigh, true
	}
	return LevelLow, false
}

// levelOrLow is the catalog-side parse: classified feature maps only ever
// carry low/medium/high, so anything missing or unrecognized counts as low.
func levelOrLow(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "medium":
		return LevelMedium
	case "high":
		return LevelHigh
	default:
		return LevelLow
	}
}
