package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadBatchFile reads translation messages from a file, one per line. Blank
// lines and lines starting with '#' are skipped. Each remaining line is a
// complete message and may carry any of the usual prefixes, for example
// "de-en: Hallo" or "de: Hallo".
func ReadBatchFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var messages []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		messages = append(messages, line)
	}
	return messages, nil
}
