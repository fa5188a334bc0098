package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/tetraglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tetraglot [message]",
		Short: "Four-language translation resolver",
		Long: `tetraglot translates free text between Russian, English, German, and
Armenian. The source language is detected automatically unless the message
carries a pair or source prefix. Results are cached on disk.

Examples:
  tetraglot                        # Start the interactive chat (default)
  tetraglot "Freundschaft"         # Translate once and exit
  tetraglot "de-en: Hallo"         # Explicit pair, one direction
  tetraglot "de: Hallo"            # Fixed source, other three languages
  tetraglot --batch messages.txt   # Translate messages from a file`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultCachePath returns the standard location of the translation cache,
// following the state directory convention.
func DefaultCachePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "tetraglot", "translation_cache.sqlite3")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.tetraglot.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate messages from file (one per line)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().StringVar(&flags.LangPair, "pair", "", "Active default language pair for the session (for example de-en)")

	// Provider flags
	cmd.Flags().StringVar(&flags.ProviderKind, "provider", flags.ProviderKind, "Translation backend: openai or httpapi")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", flags.Model, "Chat model used for translation")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "OpenAI-compatible API base URL (empty for the OpenAI default)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Single provider request timeout")
	cmd.Flags().IntVar(&flags.MaxRetries, "max-retries", flags.MaxRetries, "Provider retries after the first failed attempt")

	// Cache flags
	cmd.Flags().StringVar(&flags.CachePath, "cache", DefaultCachePath(), "Translation cache database path")

	// History flags
	cmd.Flags().IntVar(&flags.HistoryLimit, "history-limit", flags.HistoryLimit, "Translations remembered per user")
	cmd.Flags().BoolVar(&flags.HistoryEnabled, "history", flags.HistoryEnabled, "Keep per-user translation history")

	// Logging and metrics flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Also write logs to this file")
	cmd.Flags().StringVar(&flags.MetricsListen, "metrics-listen", "", "Expose Prometheus metrics on this address (for example :9090)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("provider.kind", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("provider.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("provider.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("provider.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("provider.max_retries", cmd.Flags().Lookup("max-retries"))
	viper.BindPFlag("cache.path", cmd.Flags().Lookup("cache"))
	viper.BindPFlag("history.limit", cmd.Flags().Lookup("history-limit"))
	viper.BindPFlag("history.enabled", cmd.Flags().Lookup("history"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	viper.BindPFlag("metrics.listen", cmd.Flags().Lookup("metrics-listen"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".tetraglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tetraglot")
	}

	// Environment variables
	viper.SetEnvPrefix("TETRAGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("provider.openai_key")
}
