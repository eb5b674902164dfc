// Init command for the pantry CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pantry configuration and inventory file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it exists
		// with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		store, cfg, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// Write an empty inventory only when the file does not exist yet.
		if _, err := os.Stat(cfg.File); err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}
			if err := store.Save(types.NewInventory()); err != nil {
				fmt.Fprintln(os.Stderr, "init:", err)
				os.Exit(exitSysError)
			}
		}

		fmt.Println("Pantry initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  file:  ", cfg.File)
		return nil
	},
}
