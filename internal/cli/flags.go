package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	BatchFile  string
	ListModels bool
	LangPair   string

	// Provider flags
	ProviderKind string
	Model        string
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int

	// Cache flags
	CachePath string

	// History flags
	HistoryLimit   int
	HistoryEnabled bool

	// Logging and metrics flags
	LogLevel      string
	LogFile       string
	MetricsListen string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		ProviderKind:   "openai",
		Model:          "gpt-5.2",
		Timeout:        30 * time.Second,
		MaxRetries:     2,
		HistoryLimit:   10,
		HistoryEnabled: true,
		LogLevel:       "info",
	}
}
