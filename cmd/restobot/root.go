package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the build version, overridable via -ldflags.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "restobot",
	Short: "Restobot is the conversational ordering core for Restaurant Cezar",
	Long: `Restobot tracks per-user food orders and table/takeaway reservations
behind a chat delivery channel. It exposes a JSON API for the channel
(serve) and a local REPL for trying the flow (chat).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file")
}
