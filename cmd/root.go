package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdbctl/config"
	"github.com/s0up4200/tmdbctl/filter"
	"github.com/s0up4200/tmdbctl/tmdb"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *tmdb.Client
	compiler filter.Compiler

	// Command flags
	filterExpr string
	preset     string
	language   string
	page       int

	appVersion   = "dev"
	appBuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tmdbctl",
	Short: "Query The Movie Database from the command line",
	Long: `tmdbctl is a CLI for The Movie Database (TMDb): search for movies,
TV shows and people, browse trending and discover listings, and inspect
details, credits, images and videos for any title.

Results can be narrowed client-side with filter expressions, e.g.
  tmdbctl search movie "heat" --filter 'Year > 1990 && VoteAverage >= 7'`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information stamped in at link time.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "language override, e.g. en-GB")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	opts := []tmdb.Option{
		tmdb.WithBaseURL(cfg.TMDb.BaseURL),
		tmdb.WithLogger(logger),
		tmdb.WithUserAgent("tmdbctl/" + appVersion),
	}
	if cfg.TMDb.BearerToken != "" {
		opts = append(opts, tmdb.WithBearerToken(cfg.TMDb.BearerToken))
	} else {
		opts = append(opts, tmdb.WithAPIKey(cfg.TMDb.APIKey))
	}

	defaultLanguage := cfg.TMDb.Language
	if language != "" {
		defaultLanguage = language
	}
	opts = append(opts, tmdb.WithLanguage(defaultLanguage))

	client, err = tmdb.NewClient(opts...)
	if err != nil {
		return fmt.Errorf("failed to create TMDb client: %w", err)
	}

	compiler = filter.NewCompiler()

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// compileFilter resolves the --filter/--preset flags into a compiled filter.
// Both empty means no filtering.
func compileFilter() (filter.CompiledFilter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		p, ok := cfg.Filter[preset]
		if !ok {
			return nil, fmt.Errorf("unknown filter preset: %s", preset)
		}
		expression = p
	}
	if expression == "" {
		return nil, nil
	}
	return compiler.Compile(expression)
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connectivity and credentials",
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.TestConnection(cmd.Context()); err != nil {
			return fmt.Errorf("connection test failed: %w", err)
		}
		fmt.Println("✓ Connected to TMDb")
		return nil
	},
}
