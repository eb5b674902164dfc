// Root command for the pantry CLI.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/larder"
)

// Exit codes reported by pantry commands.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagFile      string
	flagJSON      bool
	flagLogLevel  string
)

// Config values loaded from config.yaml. Set by PersistentPreRunE so all
// subcommands can use them.
var (
	configFile      string
	configThreshold int64
)

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Pantry is a single-user inventory tracker",
	Long: `Pantry tracks item quantities in a JSON inventory file.

Run without arguments to apply the built-in demonstration sequence to the
inventory file: stock apples and bananas, reject an ill-typed mutation,
remove some stock, then print the apple quantity, the low-stock items,
and an items report.`,
	Version: larder.Version,
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(flagLogLevel)

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configFile = cfg.GetString(cfgKeyFile)
		configThreshold = cfg.GetInt64(cfgKeyThreshold)
		return nil
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "inventory file (default: $(CWD)/inventory.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(qtyCmd)
	rootCmd.AddCommand(lowCmd)
	rootCmd.AddCommand(reportCmd)
}

// setupLogging installs the default slog logger writing to stderr at the
// level named by --log-level. Unknown names fall back to info.
func setupLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// resolveInventoryFile returns the inventory file path following
// --file flag > config.yaml file > LARDER_FILE env > default precedence.
func resolveInventoryFile() (string, error) {
	return paths.ResolveInventoryFile(flagFile, configFile)
}

// resolveConfigDir returns the configuration directory following
// --config-dir flag > LARDER_CONFIG_DIR env > DefaultConfigDir() precedence.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
