package parser

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"codeberg.org/snonux/tetraglot/internal/language"
)

// MaxInputLength is the longest accepted payload, in characters
const MaxInputLength = 500

// Mode identifies how a message resolves into a translation request
type Mode string

const (
	ModeExplicitPair Mode = "explicit_pair"
	ModeForcedSource Mode = "forced_source_all"
	ModeDefaultPair  Mode = "default_pair"
	ModeAutoAll      Mode = "auto_all"
)

// Rejection reasons for input that cannot become a translation request
var (
	ErrEmpty       = errors.New("empty input")
	ErrTooLong     = errors.New("input exceeds maximum length")
	ErrInvalidPair = errors.New("language pair prefix not recognized")
)

// Intent is the structured translation request extracted from a message
type Intent struct {
	Mode   Mode
	Text   string
	Source string
	Target string
}

// Parse classifies raw message text into a translation intent. The active
// bidirectional pair, when set, scopes unprefixed text; without it
// unprefixed text falls through to auto detection. First match wins:
// explicit pair prefix, forced source prefix, active pair, auto.
func Parse(raw string, active *language.Pair) (Intent, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Intent{}, ErrEmpty
	}

	var (
		explicitSrc, explicitDst string
		haveExplicit             bool
		forcedSource             string
		haveForced               bool
	)
	candidate := text

	// Prefix forms without a colon: `de-en Hallo` and `de Hallo`.
	// Kept strict to tokenized delimiters to avoid over-matching plain text.
	if !strings.Contains(text, ":") {
		if head, rest, ok := splitOnce(text); ok {
			if src, dst, ok := language.NormalizePair(head); ok {
				explicitSrc, explicitDst = src, dst
				haveExplicit = true
				candidate = rest
			} else if code, ok := language.Normalize(head); ok {
				forcedSource = code
				haveForced = true
				candidate = rest
			}
		}
	}

	if i := strings.Index(text, ":"); i >= 0 {
		prefix, remainder := text[:i], text[i+1:]
		if src, dst, ok := language.NormalizePair(prefix); ok {
			explicitSrc, explicitDst = src, dst
			haveExplicit = true
			candidate = strings.TrimSpace(remainder)
		} else if code, ok := language.Normalize(prefix); ok {
			forcedSource = code
			haveForced = true
			candidate = strings.TrimSpace(remainder)
		} else if looksLikePairPrefix(prefix) {
			return Intent{}, ErrInvalidPair
		}
	}

	if candidate == "" {
		return Intent{}, ErrEmpty
	}
	if utf8.RuneCountInString(candidate) > MaxInputLength {
		return Intent{}, ErrTooLong
	}

	switch {
	case haveExplicit:
		return Intent{Mode: ModeExplicitPair, Text: candidate, Source: explicitSrc, Target: explicitDst}, nil
	case haveForced:
		return Intent{Mode: ModeForcedSource, Text: candidate, Source: forcedSource}, nil
	case active != nil:
		return Intent{Mode: ModeDefaultPair, Text: candidate, Source: active.A, Target: active.B}, nil
	default:
		return Intent{Mode: ModeAutoAll, Text: candidate}, nil
	}
}

// looksLikePairPrefix reports whether an unresolvable colon prefix was most
// likely an attempted language pair: it contains a pair delimiter, or it is
// exactly two whitespace-separated tokens. Such prefixes are rejected rather
// than silently translated as plain text.
func looksLikePairPrefix(prefix string) bool {
	compact := strings.TrimSpace(prefix)
	if compact == "" {
		return false
	}
	if strings.ContainsAny(compact, "-_") || strings.Contains(compact, "→") {
		return true
	}
	return len(strings.Fields(compact)) == 2
}

// splitOnce splits text at the first whitespace run into a head token and
// the trimmed remainder
func splitOnce(text string) (head, rest string, ok bool) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	rest = strings.TrimSpace(text[i:])
	if rest == "" {
		return "", "", false
	}
	return text[:i], rest, true
}
