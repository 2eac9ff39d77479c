package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/modrinth-go/config"
	"github.com/s0up4200/modrinth-go/filter"
	"github.com/s0up4200/modrinth-go/modrinth"
	"github.com/s0up4200/modrinth-go/openapi"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *modrinth.Client
	filters  *filter.Manager
	debugAPI bool
	jsonOut  bool

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "modrinth",
	Short: "A command line client for the Modrinth API",
	Long: `modrinth is a CLI for the Modrinth v2 API. It lists, reads and deletes
notifications, and looks up users, projects and versions.

A personal access token is read from api.token in the config file or from
the MODRINTH_API_TOKEN environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the build information reported by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	if client != nil {
		if closeErr := client.Close(); closeErr != nil {
			logger.Warn().Err(closeErr).Msg("Failed to close debug file")
		}
	}

	if err != nil {
		reportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, os.Stderr)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugAPI, "debug", false, "dump every request and response")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	rootCmd.AddCommand(testCmd)
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	if cmd.Flags().Changed("debug") {
		cfg.Debug.Enabled = debugAPI
	}

	userAgent := cfg.API.UserAgent
	if userAgent == openapi.DefaultUserAgent && version != "dev" {
		userAgent = "modrinth-go/" + version
	}

	apiCfg := cfg.Configuration()
	apiCfg.SetUserAgent(userAgent)

	client, err = modrinth.NewClient(apiCfg,
		modrinth.WithLogger(logger),
		modrinth.WithTimeout(cfg.API.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create Modrinth client: %w", err)
	}

	filters = filter.NewManager(filter.NewCompiler())
	if err := filters.RegisterAll(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("url", cfg.API.URL).
		Bool("authenticated", cfg.API.Token != "").
		Bool("debug", cfg.Debug.Enabled).
		Msg("Client initialized")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// reportError prints err with the details the API sent back
func reportError(w io.Writer, err error) {
	switch {
	case modrinth.IsRetired(err):
		fmt.Fprintln(w, "Error: this version of the Modrinth API has been retired. Please update with `modrinth update`.")
	case modrinth.IsUnauthorized(err):
		if authErr, ok := modrinth.AuthErrorFrom(err); ok {
			fmt.Fprintf(w, "Error: authentication failed (%s): %s\n", authErr.Error, authErr.Description)
		} else {
			fmt.Fprintln(w, "Error: authentication failed. Check api.token or MODRINTH_API_TOKEN.")
		}
	case errors.Is(err, openapi.ErrTransport):
		fmt.Fprintf(w, "Error: could not reach the Modrinth API: %v\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to Modrinth",
	Long:    `Test the connection to the Modrinth API and show the user the token belongs to.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Modrinth at %s...\n", cfg.API.URL)

	if cfg.API.Token == "" {
		return fmt.Errorf("no token configured. Please set api.token in config or MODRINTH_API_TOKEN")
	}

	result, err := client.Users.GetUserFromAuthWithHTTPInfo(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("\nAuthenticated as %s (ID: %s)\n", result.Value.Username, result.Value.ID)
	if result.Value.Role != "" {
		fmt.Printf("- Role: %s\n", result.Value.Role)
	}

	if rl := result.RateLimit(); rl.Present {
		fmt.Printf("- Rate limit: %d/%d remaining, resets in %s\n", rl.Remaining, rl.Limit, rl.Reset)
	}

	return nil
}
