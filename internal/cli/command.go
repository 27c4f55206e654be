package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/banglahindi/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "banglahindi [text]",
		Short: "Bangla to Hindi (Devanagari) transliterator",
		Long: `banglahindi converts Bangla-script text into Hindi written in Devanagari.

A deterministic rule engine does the transliteration. Complex sentences,
idioms and a final polishing pass are handed to a language model when an
API key is configured; without one the rule-based output is printed.

Examples:
  banglahindi "আমি ভাত খাই।"              # Transliterate text
  echo "আমি ভাত খাই।" | banglahindi -     # Read text from stdin
  banglahindi --batch lines.txt            # One text per line, "bangla = hindi" records feedback
  banglahindi --word "খাই=खाता हूँ" "আমি ভাত খাই।"
  banglahindi idiom "নাকে কাঁদা"           # Translate an idiom
  banglahindi flush                        # Submit pending feedback now
  banglahindi corpora                      # List archived corpora`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// CreateIdiomCommand creates the idiom subcommand. The caller sets RunE.
func CreateIdiomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "idiom <phrase>",
		Short: "Translate a Bangla idiom into a Hindi idiom",
		Args:  cobra.MinimumNArgs(1),
	}
}

// CreateFlushCommand creates the flush subcommand. The caller sets RunE.
func CreateFlushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Submit all pending feedback corrections now",
		Args:  cobra.NoArgs,
	}
}

// CreateCorporaCommand creates the corpora subcommand. The caller sets RunE.
func CreateCorporaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "corpora",
		Short: "List archived feedback corpora, oldest first",
		Args:  cobra.NoArgs,
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	stateDir := internal.DefaultStateDir()

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.banglahindi.yaml)")
	cmd.PersistentFlags().StringVar(&flags.StateDir, "state-dir", stateDir, "Directory for the feedback database and corpus archive")
	cmd.PersistentFlags().StringVar(&flags.FeedbackDB, "feedback-db", "", "Feedback database path (default is <state-dir>/feedback.db)")
	cmd.PersistentFlags().StringVar(&flags.Provider, "provider", flags.Provider, "Language model provider: openai or gemini")
	cmd.PersistentFlags().StringVar(&flags.Model, "model", flags.Model, "Model used for restructuring and refinement (default depends on provider)")
	cmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout for each language model request")
	cmd.PersistentFlags().CountVarP(&flags.Verbose, "verbose", "v", "Increase log verbosity (-v, -vv)")
	cmd.PersistentFlags().BoolVar(&flags.JSONLogs, "json-logs", false, "Write logs as JSON lines")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process texts from file (one per line)")
	cmd.Flags().StringArrayVar(&flags.Words, "word", nil, "Custom word override bangla=hindi (repeatable)")
	cmd.Flags().StringArrayVar(&flags.Feedback, "feedback", nil, "Record a correction bangla=hindi (repeatable)")
	cmd.Flags().BoolVar(&flags.NoRefine, "no-refine", false, "Skip the language model refinement pass")
	cmd.Flags().StringVar(&flags.CacheDir, "cache-dir", "", "Directory for cached refinements (default is <state-dir>/cache)")
	cmd.Flags().BoolVar(&flags.NoCache, "no-cache", false, "Disable the refinement cache")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("nlp.provider", cmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("nlp.model", cmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("nlp.timeout", cmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("nlp.cache_dir", cmd.Flags().Lookup("cache-dir"))
	viper.BindPFlag("feedback.db", cmd.PersistentFlags().Lookup("feedback-db"))
	viper.BindPFlag("state.dir", cmd.PersistentFlags().Lookup("state-dir"))
	viper.BindPFlag("log.verbose", cmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log.json", cmd.PersistentFlags().Lookup("json-logs"))

	viper.SetDefault("nlp.refine", true)
	viper.SetDefault("nlp.cache", true)
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

		// Search config in home directory with name ".banglahindi" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".banglahindi")
	}

	// Environment variables
	viper.SetEnvPrefix("BANGLAHINDI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
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
	return viper.GetString("nlp.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("nlp.gemini_key")
}

// ParsePair splits "bangla=hindi" into its two trimmed halves.
func ParsePair(s string) (bangla, hindi string, err error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return "", "", errors.Newf("expected bangla=hindi, got %q", s)
	}

	bangla = strings.TrimSpace(parts[0])
	hindi = strings.TrimSpace(parts[1])
	if bangla == "" || hindi == "" {
		return "", "", errors.Newf("both sides of %q must be non-empty", s)
	}
	return bangla, hindi, nil
}
