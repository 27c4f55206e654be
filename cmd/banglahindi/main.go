package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/banglahindi/internal/cli"
	"codeberg.org/snonux/banglahindi/internal/logger"
	"codeberg.org/snonux/banglahindi/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		if err := logger.Initialize(viper.GetInt("log.verbose"), viper.GetBool("log.json")); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		}
	})

	// Set the run functions
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withProcessor(cmd, flags, func(ctx context.Context, p *processor.Processor) error {
			return runCommand(ctx, p, args, flags)
		})
	}

	idiomCmd := cli.CreateIdiomCommand()
	idiomCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withProcessor(cmd, flags, func(ctx context.Context, p *processor.Processor) error {
			return p.TranslateIdiom(ctx, strings.Join(args, " "))
		})
	}

	flushCmd := cli.CreateFlushCommand()
	flushCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withProcessor(cmd, flags, func(ctx context.Context, p *processor.Processor) error {
			return p.Flush(ctx)
		})
	}

	corporaCmd := cli.CreateCorporaCommand()
	corporaCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withProcessor(cmd, flags, func(ctx context.Context, p *processor.Processor) error {
			return p.ListCorpora()
		})
	}

	rootCmd.AddCommand(idiomCmd, flushCmd, corporaCmd)

	// Execute command
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		os.Exit(1)
	}
}

func withProcessor(cmd *cobra.Command, flags *cli.Flags, run func(context.Context, *processor.Processor) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	proc, err := processor.NewProcessor(ctx, flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	return run(ctx, proc)
}

func runCommand(ctx context.Context, p *processor.Processor, args []string, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		return p.ListModels(ctx)
	}

	// Corrections given on the command line are recorded first
	if err := p.RecordFeedbackFlags(ctx); err != nil {
		return err
	}

	switch {
	case flags.BatchFile != "":
		return p.ProcessBatch(ctx)
	case len(args) == 1 && args[0] == "-":
		return p.ProcessReader(ctx, os.Stdin)
	case len(args) > 0:
		return p.ProcessText(ctx, strings.Join(args, " "))
	case len(flags.Feedback) > 0:
		return nil
	default:
		return errors.WithHint(errors.New("no input given"),
			"pass text as arguments, '-' to read stdin, or --batch FILE")
	}
}
