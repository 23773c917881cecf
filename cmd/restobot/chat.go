package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/munteanooo/telegram-restaurant-bot/internal/config"
	"github.com/munteanooo/telegram-restaurant-bot/pkg/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Drive the ordering flow from the terminal",
	Long: `Runs the interaction state machine against the configured store on
stdin/stdout. Type a button number or a raw action code; "exit" quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		userID, _ := cmd.Flags().GetString("user")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err := buildLogger(cfg)
		if err != nil {
			return err
		}

		machine, closeStore, err := buildMachine(cfg, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx := context.Background()

		reply, err := machine.Welcome(ctx, userID)
		if err != nil {
			return err
		}
		printReply(reply)

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				// EOF ends the chat.
				fmt.Println()
				return nil
			}
			input := strings.TrimSpace(line)
			if input == "" {
				continue
			}
			if input == "exit" || input == "quit" {
				fmt.Println("La revedere!")
				return nil
			}

			action := input
			if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(reply.Buttons) {
				action = reply.Buttons[n-1].Action
			}

			next, err := machine.Handle(ctx, userID, action)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			reply = next
			printReply(reply)
		}
	},
}

func printReply(reply *domain.Reply) {
	fmt.Println()
	fmt.Println(reply.Text)
	fmt.Println()
	for i, button := range reply.Buttons {
		fmt.Printf("  %d) %s\n", i+1, button.Label)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().String("user", "local", "User id to chat as")
}
