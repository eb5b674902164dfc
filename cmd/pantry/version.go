// Version command for the pantry CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/larder/pkg/larder"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pantry version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pantry", larder.Version)
	},
}
