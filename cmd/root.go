package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/api"
	"github.com/abhisek/quizmate/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizmate",
	Short: "Take quizzes from your terminal",
	Long: "quizmate fetches quizzes from a quiz API, lets you answer them in the terminal " +
		"and forwards your result to a host channel (Telegram chat or WebSocket bridge).",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Path to YAML config file (overrides QUIZMATE_CONFIG env var)")
	c.PersistentFlags().String("api", "", "Quiz API base URL (overrides QUIZMATE_API_URL env var)")
	c.PersistentFlags().String("lang", "", "Interface language: en or ru (overrides QUIZMATE_LANG env var)")
	c.PersistentFlags().String("log", "", `Log file path, "-" disables logging (overrides QUIZMATE_LOG env var)`)
	c.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// resolveConfig layers the --config file, QUIZMATE_* env vars and the
// remaining flags, in increasing priority, and validates the result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, os.Getenv)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("api"); v != "" {
		cfg.API.BaseURL = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Language = v
	}
	if v, _ := cmd.Flags().GetString("log"); v != "" {
		cfg.LogPath = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newAPIClient builds the quiz API client for cfg.
func newAPIClient(cfg config.Config) (*api.HTTPClient, error) {
	timeout, err := cfg.API.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	return api.NewHTTPClient(cfg.API.BaseURL, &http.Client{Timeout: timeout}), nil
}
