// Package parser classifies raw message text into one of four translation
// modes: an explicit directional pair ("de-en: Hallo"), a forced source
// language ("de: Hallo"), the user's active bidirectional pair, or automatic
// detection with all other languages as targets. Parsing is pure: it either
// produces a structured intent or a typed rejection, never a side effect.
package parser
