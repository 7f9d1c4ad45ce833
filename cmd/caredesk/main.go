// Command caredesk is the client CLI for the Caredesk clinic backend. It
// wraps the resource gateways, read cache and session store behind cobra
// subcommands so the whole client surface is scriptable.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/caredesk/caredesk/internal/config"
	"github.com/caredesk/caredesk/internal/domain/auth"
	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/internal/platform/querycache"
	"github.com/caredesk/caredesk/internal/platform/session"
)

type app struct {
	cfg    *config.Config
	log    zerolog.Logger
	sess   *session.Store
	client *api.Client
	cache  *querycache.Cache
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg)

	sess, err := session.NewStore(cfg.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client, err := api.NewClient(api.ClientConfig{
		BaseURL: cfg.APIBaseURL,
		Tokens:  sess,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	return &app{
		cfg:    cfg,
		log:    logger,
		sess:   sess,
		client: client,
		cache:  querycache.New(cfg.CacheTTL, logger),
	}, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.LogFormat == "console" || cfg.Env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return logger.Level(level)
}

// printJSON writes v to stdout; all command output goes through here so the
// CLI stays pipeable while logs go to stderr.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "caredesk",
		Short:         "Caredesk clinic API client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(themeCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(sandboxCmd())
	for _, ops := range resourceCommands() {
		rootCmd.AddCommand(resourceCmd(ops))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "caredesk: %v\n", err)
		if api.IsUnauthorized(err) {
			fmt.Fprintln(os.Stderr, "caredesk: run `caredesk login` to start a new session")
		}
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			if email == "" || password == "" {
				return fmt.Errorf("both --email and --password are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			tokens, user, err := auth.NewGateway(a.client).Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.sess.Login(tokens, user); err != nil {
				return err
			}
			a.log.Info().Str("email", a.sess.Email()).Str("role", a.sess.Role()).Msg("logged in")
			return printJSON(map[string]string{
				"user_id": a.sess.UserID(),
				"email":   a.sess.Email(),
				"role":    a.sess.Role(),
			})
		},
	}
	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return a.sess.Logout()
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if !a.sess.LoggedIn() {
				return fmt.Errorf("not logged in")
			}
			user, err := auth.NewGateway(a.client).Profile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the persisted UI theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return printJSON(map[string]string{"theme": a.sess.Theme()})
			}
			if args[0] != "light" && args[0] != "dark" {
				return fmt.Errorf("theme must be light or dark, got %q", args[0])
			}
			return a.sess.SetTheme(args[0])
		},
	}
	return cmd
}
