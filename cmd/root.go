package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reshuffle/admin/internal/config"
	"github.com/reshuffle/admin/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "reshuffle-admin",
	Short: "Terminal client for the Reshuffle admin forms",
	Long: "reshuffle-admin edits Reshuffle parts and tasks from the terminal. Dependent\n" +
		"fields follow the admin validation endpoints: choosing a subject enables the\n" +
		"title, the title the answer type, and so on down the chain.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/reshuffle-admin/config.yaml)")
	pf.String("db", "", "Path to SQLite fetch history (overrides RESHUFFLE_DB env var)")
	pf.String("base-url", "", "Admin site root URL (overrides RESHUFFLE_BASE_URL env var)")
	pf.String("log-file", "", "Log file (default $XDG_STATE_HOME/reshuffle-admin/admin.log)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(partCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies flag
// overrides, which take the highest priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if v, _ := cmd.Flags().GetString("base-url"); v != "" {
		cfg.Endpoint.BaseURL = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// resolveDBPath returns the database path from the config (--db flag,
// RESHUFFLE_DB, config file), then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads the config and opens the fetch history.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
