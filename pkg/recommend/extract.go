package recommend

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// flatMapPattern matches the first brace pair that contains no nested braces.
// The assistant's final turn embeds exactly one such flat dictionary.
var flatMapPattern = regexp.MustCompile(`\{[^{}]+\}`)

// ExtractProfile locates the flat requirement map inside assistant text and
// resolves it into a Profile. All ten keys must resolve; a single missing or
// unresolvable key fails the whole extraction.
func ExtractProfile(text string) (*Profile, bool) {
	pairs, err := parseFlatMap(text)
	if err != nil {
		return nil, false
	}
	return buildProfile(pairs)
}

// ProfileReady is the cheap readiness probe run on every assistant turn.
// It shares the exact parse and validation path with ExtractProfile so the
// probe and the extractor can never disagree on what counts as complete.
func ProfileReady(text string) bool {
	pairs, err := parseFlatMap(text)
	if err != nil {
		return false
	}
	_, ok := buildProfile(pairs)
	return ok
}

// ExtractFeatureMap parses a nine-key classification map (the offline
// classifier's output format). All nine feature keys must resolve to a level.
func ExtractFeatureMap(text string) (map[string]string, bool) {
	pairs, err := parseFlatMap(text)
	if err != nil {
		return nil, false
	}
	indexed := indexByNormalizedKey(pairs)
	features := make(map[string]string, len(FeatureKeys))
	for _, key := range FeatureKeys {
		raw, ok := indexed[key]
		if !ok {
			return nil, false
		}
		lvl, ok := ParseLevel(raw)
		if !ok {
			return nil, false
		}
		features[key] = lvl.String()
	}
	return features, true
}

// NormalizeFeatureKeys re-indexes a stored feature map by canonical keys so
// casing or underscore variants still compare correctly.
func NormalizeFeatureKeys(features map[string]string) map[string]string {
	if len(features) == 0 {
		return nil
	}
	normalized := make(map[string]string, len(features))
	for k, v := range features {
		normalized[normalizeKey(k)] = strings.ToLower(strings.TrimSpace(v))
	}
	return normalized
}

type pair struct {
	key   string
	value string
}

// parseFlatMap finds the first flat brace-delimited substring and parses it
// as key/value pairs. Commas and colons inside quotes do not split.
func parseFlatMap(text string) ([]pair, error) {
	body := flatMapPattern.FindString(text)
	if body == "" {
		return nil, fmt.Errorf("no flat map found")
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	if body == "" {
		return nil, fmt.Errorf("empty map")
	}

	var pairs []pair
	for _, item := range splitOutsideQuotes(body, ',') {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kv := splitOutsideQuotes(item, ':')
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed entry %q", item)
		}
		key := unquote(kv[0])
		value := unquote(kv[1])
		if key == "" {
			return nil, fmt.Errorf("empty key in entry %q", item)
		}
		pairs = append(pairs, pair{key: key, value: value})
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no entries")
	}
	return pairs, nil
}

func splitOutsideQuotes(s string, sep rune) []string {
	var parts []string
	var current strings.Builder
	var quote rune
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == sep:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	parts = append(parts, current.String())
	return parts
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.TrimSpace(s)
}

// normalizeKey makes key lookup tolerant of casing, underscores and stray
// punctuation: "GPU_Intensity " and "gpu intensity" index identically.
func normalizeKey(key string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(key) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func indexByNormalizedKey(pairs []pair) map[string]string {
	indexed := make(map[string]string, len(pairs))
	for _, p := range pairs {
		indexed[normalizeKey(p.key)] = p.value
	}
	return indexed
}

func buildProfile(pairs []pair) (*Profile, bool) {
	indexed := indexByNormalizedKey(pairs)

	profile := &Profile{}
	for _, key := range FeatureKeys {
		raw, ok := indexed[key]
		if !ok {
			return nil, false
		}
		lvl, ok := ParseLevel(raw)
		if !ok {
			return nil, false
		}
		profile.setRequirement(key, lvl)
	}

	rawBudget, ok := indexed[KeyBudget]
	if !ok {
		return nil, false
	}
	budget, ok := parseAmount(rawBudget)
	if !ok {
		return nil, false
	}
	profile.Budget = budget
	return profile, true
}

// parseAmount strips every non-digit rune ("₹1,50,000 INR" becomes 150000)
// and fails when no digits remain.
func parseAmount(raw string) (int, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	amount := 0
	for _, r := range digits.String() {
		amount = amount*10 + int(r-'0')
		if amount < 0 {
			return 0, false
		}
	}
	return amount, true
}
