package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lexaid/backend/internal/client"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Opens an interactive prompt. Each line is sent as one chat turn and
the response is streamed back. Commands: /clear wipes the conversation
(recording a summary on the case timeline first), /quit exits.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	consumer := client.NewConsumer(api, client.Handlers{
		OnDelta: func(_ *client.Entry, delta string) {
			fmt.Print(delta)
		},
		OnToolCall: func(id, name string) {
			fmt.Printf("\n[calling %s...]\n", name)
		},
		OnToolResponse: func(id, name, response string) {
			fmt.Printf("[%s done]\n", name)
		},
		OnError: func(message string) {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", message)
		},
	})
	consumer.SetAgent(agentName)

	fmt.Println("Connected. Type a message, /clear to reset, /quit to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit":
			return nil
		case line == "/clear":
			if err := consumer.Clear(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "clear failed: %v\n", err)
				continue
			}
			fmt.Println("Conversation cleared.")
			continue
		}

		if err := consumer.Submit(cmd.Context(), line); err != nil {
			fmt.Fprintf(os.Stderr, "turn failed: %v\n", err)
			continue
		}
		fmt.Println()
	}
	return scanner.Err()
}
