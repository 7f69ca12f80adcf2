package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	client "github.com/hsn0918/docparse-client"
)

const (
	envPrefix = "UPSTAGE"

	modeAsync = "async"
	modeSync  = "sync"
)

// config is resolved from flags, then UPSTAGE_* environment variables, then defaults.
type config struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Mode         string        `mapstructure:"mode"`
	DatasetDir   string        `mapstructure:"dataset_dir"`
	OutputDir    string        `mapstructure:"output_dir"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	FailLog      string        `mapstructure:"fail_log"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"api-key":      "api_key",
	"base-url":     "base_url",
	"timeout":      "timeout",
	"mode":         "mode",
	"dataset-dir":  "dataset_dir",
	"output-dir":   "output_dir",
	"interval":     "poll_interval",
	"max-attempts": "max_attempts",
	"fail-log":     "fail_log",
}

func addConfigFlags(flags *pflag.FlagSet, opts *cliOptions) {
	flags.String("api-key", "", "Upstage API key (or set UPSTAGE_API_KEY)")
	flags.String("base-url", client.DefaultBaseURL, "Base URL for the document-parse API")
	flags.Duration("timeout", client.DefaultTimeout, "HTTP timeout for API requests")
	flags.String("mode", modeAsync, "Parsing strategy: async|sync (sync is faster but limited to small documents)")
	flags.String("dataset-dir", "dataset", "Directory holding the input files")
	flags.String("output-dir", "output", "Directory for JSON results and comparison pages")
	flags.Duration("interval", client.DefaultPollInterval, "Polling interval for async jobs")
	flags.Int("max-attempts", client.DefaultMaxAttempts, "Maximum status queries before giving up on an async job")
	flags.String("fail-log", "fail.log", "Path to write failed task logs")
	flags.StringVar(&opts.envFile, "env-file", ".env", "Optional dotenv file loaded before reading UPSTAGE_* variables")
}

// newViper binds every config flag registered on flags. BindPFlag only fails
// on a nil flag, which VisitAll never yields.
func newViper(flags *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})

	return v
}

// loadConfig reads the dotenv file (if any) and resolves the final config.
func loadConfig(v *viper.Viper, envFile string) (*config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *config) validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	switch c.Mode {
	case modeAsync, modeSync:
	default:
		return fmt.Errorf("unsupported mode: %s", c.Mode)
	}

	if c.APIKey == "" {
		return errors.New("api key is required (flag --api-key or UPSTAGE_API_KEY)")
	}

	return nil
}

// buildParser wires the configured strategy to a client that logs through logger.
func buildParser(cfg *config, logger *slog.Logger) client.DocumentParser {
	cli := client.NewClient(cfg.APIKey,
		client.WithBaseURL(cfg.BaseURL),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger),
	)

	if cfg.Mode == modeSync {
		return client.NewSyncParser(cli)
	}

	return client.NewAsyncParser(cli,
		client.WithPollInterval(cfg.PollInterval),
		client.WithMaxAttempts(cfg.MaxAttempts),
	)
}
