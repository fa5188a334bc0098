// Package logging builds the application logger: logrus with a text
// formatter, optional file output, and redaction of token-like secrets
// from every entry.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`sk-[A-Za-z0-9]{16,}`),
	regexp.MustCompile(`\b\d{8,}:[A-Za-z0-9_-]{20,}\b`),
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._-]{16,}`),
}

// Redact replaces token-like substrings with a placeholder.
func Redact(text string) string {
	for _, pattern := range secretPatterns {
		text = pattern.ReplaceAllString(text, "[REDACTED]")
	}
	return text
}

// RedactionHook rewrites the message and string fields of every entry
// so API credentials never reach the log output.
type RedactionHook struct{}

// Levels implements logrus.Hook.
func (h *RedactionHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *RedactionHook) Fire(entry *logrus.Entry) error {
	entry.Message = Redact(entry.Message)
	for key, value := range entry.Data {
		if s, ok := value.(string); ok {
			entry.Data[key] = Redact(s)
		}
	}
	return nil
}

// Setup creates the application logger. Output goes to stderr, and to
// logFile as well when one is given. An unknown level falls back to info.
func Setup(level, logFile string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
	logger.AddHook(&RedactionHook{})
	if err != nil {
		logger.WithField("level", level).Warn("Unknown log level, falling back to info")
	}

	if logFile != "" {
		if dir := filepath.Dir(logFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, file))
	}
	return logger, nil
}
