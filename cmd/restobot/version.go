package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of restobot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("restobot version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
