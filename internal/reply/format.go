package reply

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/tetraglot/internal/history"
	"codeberg.org/snonux/tetraglot/internal/language"
	"codeberg.org/snonux/tetraglot/internal/parser"
	"codeberg.org/snonux/tetraglot/internal/translator"
)

// FormatResult renders a translation result for the user. Targets appear in
// the fixed display order. The detected source line is shown only in auto
// mode, where the user did not state it.
func FormatResult(result *translator.Result, mode parser.Mode) string {
	var lines []string

	if mode == parser.ModeAutoAll && result.SourceLanguage != "" {
		lines = append(lines, fmt.Sprintf("Исходный язык: %s", language.Label(result.SourceLanguage)))
	}

	for _, lang := range language.Supported() {
		if text, ok := result.Translations[lang]; ok {
			lines = append(lines, fmt.Sprintf("- %s: %s", language.Label(lang), text))
		}
	}

	if result.Annotations.PastForms != "" {
		lines = append(lines, fmt.Sprintf("Прошедшие формы: %s", result.Annotations.PastForms))
	}
	if result.Annotations.GermanNounArticle != "" {
		lines = append(lines, fmt.Sprintf("Артикль/род (de): %s", result.Annotations.GermanNounArticle))
	}
	if result.Annotations.GermanVerbGovernance != "" {
		lines = append(lines, fmt.Sprintf("Управление (de): %s", result.Annotations.GermanVerbGovernance))
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// FormatHistory renders history records as a numbered list, newest first.
func FormatHistory(records []history.Record) string {
	lines := make([]string, 0, len(records))
	for i, record := range records {
		lines = append(lines, fmt.Sprintf("%d. %s | %s -> %s | %s",
			i+1,
			record.Timestamp.UTC().Format("2006-01-02 15:04 UTC"),
			record.Source,
			strings.Join(record.Targets, ", "),
			record.Snippet,
		))
	}
	return strings.Join(lines, "\n")
}
