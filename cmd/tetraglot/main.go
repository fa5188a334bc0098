package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/tetraglot/internal/cli"
	"codeberg.org/snonux/tetraglot/internal/models"
	"codeberg.org/snonux/tetraglot/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	ctx := context.Background()

	// Handle batch processing
	if flags.BatchFile != "" {
		// Process batch file
		return proc.ProcessBatch(ctx)
	}

	// Process single message
	if len(args) > 0 {
		return proc.ProcessSingleMessage(ctx, args[0])
	}

	// No input provided - start the interactive chat by default
	return proc.RunChat(ctx)
}
