package processor

import (
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/banglahindi/internal"
	"codeberg.org/snonux/banglahindi/internal/cli"
	"codeberg.org/snonux/banglahindi/internal/nlp"
)

// stringSetting prefers a value from viper (flag, env or config file) and
// falls back to the flag struct when nothing is set there.
func stringSetting(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func boolSetting(key string, fallback bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return fallback
}

func resolveStateDir(flags *cli.Flags) string {
	if dir := stringSetting("state.dir", flags.StateDir); dir != "" {
		return dir
	}
	return internal.DefaultStateDir()
}

// buildNLPConfig assembles the collaborator configuration from flags,
// viper and the environment.
func buildNLPConfig(flags *cli.Flags, logger *zap.SugaredLogger) *nlp.Config {
	config := nlp.DefaultConfig()

	config.Provider = stringSetting("nlp.provider", flags.Provider)
	config.FallbackProvider = viper.GetString("nlp.fallback_provider")
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIBaseURL = viper.GetString("nlp.base_url")
	config.GeminiKey = cli.GetGeminiKey()

	if model := stringSetting("nlp.model", flags.Model); model != "" {
		if config.Provider == "gemini" {
			config.GeminiModel = model
		} else {
			config.OpenAIModel = model
		}
	}

	config.Timeout = flags.Timeout
	if viper.IsSet("nlp.timeout") {
		if d := viper.GetDuration("nlp.timeout"); d > 0 {
			config.Timeout = d
		}
	}
	if rps := viper.GetFloat64("nlp.requests_per_second"); rps > 0 {
		config.RequestsPerSecond = rps
	}

	config.CacheDir = stringSetting("nlp.cache_dir", flags.CacheDir)
	if config.CacheDir == "" {
		config.CacheDir = filepath.Join(resolveStateDir(flags), "cache")
	}
	config.EnableCache = !flags.NoCache && boolSetting("nlp.cache", true)
	config.Logger = logger

	return config
}

// hasCredentials reports whether the configured primary provider has an
// API key.
func hasCredentials(config *nlp.Config) bool {
	if config.Provider == "gemini" {
		return config.GeminiKey != ""
	}
	return config.OpenAIKey != ""
}
