// Package language is the registry of the four supported languages. It maps
// user-written language tokens (in Latin, Cyrillic, and Armenian scripts) to
// canonical two-letter codes and builds order-independent language pairs.
package language

import (
	"regexp"
	"strings"
)

// Canonical codes of the supported languages
const (
	Russian  = "ru"
	English  = "en"
	German   = "de"
	Armenian = "hy"
)

// supported lists the canonical codes in display order
var supported = []string{Russian, English, German, Armenian}

// labels are the native-script display names
var labels = map[string]string{
	Russian:  "Русский",
	English:  "English",
	German:   "Deutsch",
	Armenian: "Հայերեն",
}

// aliases accepts language names in Latin, Cyrillic, and Armenian scripts
var aliases = map[string]string{
	// Russian
	"ru":        Russian,
	"rus":       Russian,
	"russian":   Russian,
	"рус":       Russian,
	"русский":   Russian,
	"русском":   Russian,
	"ռուս":      Russian,
	"ռուսերեն":  Russian,
	// English
	"en":        English,
	"eng":       English,
	"english":   English,
	"анг":       English,
	"англ":      English,
	"английский": English,
	"անգլ":      English,
	"անգլերեն":  English,
	// German
	"de":        German,
	"deu":       German,
	"ger":       German,
	"german":    German,
	"deutsch":   German,
	"нем":       German,
	"немецкий":  German,
	"գերմ":      German,
	"գերմաներեն": German,
	// Armenian
	"hy":        Armenian,
	"hye":       Armenian,
	"arm":       Armenian,
	"armenian":  Armenian,
	"арм":       Armenian,
	"армянский": Armenian,
	"հայ":       Armenian,
	"հայերեն":   Armenian,
}

var pairPattern = regexp.MustCompile(`^(.+?)\s*(?:-|_|→|\s)\s*(.+?)$`)

// Supported returns the canonical language codes in display order
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is one of the four canonical codes
func IsSupported(code string) bool {
	_, ok := labels[code]
	return ok
}

// Label returns the native-script display name for a canonical code
func Label(code string) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return code
}

// Others returns the supported codes excluding the given one, in display order
func Others(code string) []string {
	out := make([]string, 0, len(supported)-1)
	for _, lang := range supported {
		if lang != code {
			out = append(out, lang)
		}
	}
	return out
}

// cleanToken lowercases a raw token and strips everything that is not a
// digit or a Latin, Cyrillic, or Armenian letter. Cyrillic ё folds to е so
// spellings with either letter match the same alias.
func cleanToken(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	token = strings.ReplaceAll(token, "ё", "е")

	var b strings.Builder
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'а' && r <= 'я':
			b.WriteRune(r)
		case r >= 'ա' && r <= 'ֆ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize maps a user-provided language token to its canonical code
func Normalize(raw string) (string, bool) {
	cleaned := cleanToken(raw)
	if cleaned == "" {
		return "", false
	}
	if IsSupported(cleaned) {
		return cleaned, true
	}
	code, ok := aliases[cleaned]
	return code, ok
}

// NormalizePair parses a directional language pair such as "ru-en", "ru→en",
// or "ru en". Both tokens must resolve to supported languages and differ.
func NormalizePair(raw string) (src, dst string, ok bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", "", false
	}

	match := pairPattern.FindStringSubmatch(text)
	if match == nil {
		return "", "", false
	}

	src, srcOK := Normalize(match[1])
	dst, dstOK := Normalize(match[2])
	if !srcOK || !dstOK || src == dst {
		return "", "", false
	}
	return src, dst, true
}

// Pair is an unordered two-language combination. The canonical form keeps
// the codes sorted so {en,de} and {de,en} are the same pair.
type Pair struct {
	A string
	B string
}

// CanonicalPair builds the canonical form of a bidirectional pair
func CanonicalPair(a, b string) (Pair, bool) {
	if !IsSupported(a) || !IsSupported(b) || a == b {
		return Pair{}, false
	}
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}, true
}

// Languages returns the pair's codes in canonical order
func (p Pair) Languages() []string {
	return []string{p.A, p.B}
}

// Contains reports whether code is one of the pair's two languages
func (p Pair) Contains(code string) bool {
	return code == p.A || code == p.B
}

// Other returns the pair's language that is not the given one
func (p Pair) Other(code string) string {
	if code == p.A {
		return p.B
	}
	return p.A
}

// String renders the pair as "a-b"
func (p Pair) String() string {
	return p.A + "-" + p.B
}
