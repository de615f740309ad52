// Package cmd implements the interactive terminal client.
package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bestie-chat/internal/cli/api"
	"bestie-chat/internal/cli/config"
	"bestie-chat/internal/cli/controller"
	"bestie-chat/internal/model"
)

// maxMessageLength mirrors the composer's character cap.
const maxMessageLength = 2000

// defaultPersonalityTemplate is the starting point offered to users who have
// not configured a persona yet.
const defaultPersonalityTemplate = `{
  "name": "Alex",
  "personality": "friendly, supportive, and slightly humorous",
  "traits": ["empathetic", "curious", "encouraging"],
  "communication_style": "casual but thoughtful",
  "interests": ["technology", "books", "movies", "life advice"],
  "response_guidelines": {
    "tone": "warm and conversational",
    "length": "medium-length responses",
    "emoji_usage": "occasional, when appropriate"
  },
  "system_prompt": "You are Alex, a caring AI best friend. Be supportive, ask follow-up questions, remember context from the conversation, and show genuine interest in the user's life. Keep responses natural and engaging."
}`

var rootCmd = &cobra.Command{
	Use:   "bestie",
	Short: "Terminal client for the bestie-chat backend",
	Long: `Interactive chat client.

Type a message and press Enter to send it. Commands:
  /new                start a new conversation
  /clear              clear the view and start a new conversation
  /personality        show the stored personality configuration
  /personality init   install the default personality template
  /personality check  validate the stored configuration against the server
  /quit               exit`,
	RunE: runInteractive,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringP("server", "s", "", "backend address (default: http://localhost:8000)")
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if server, _ := rootCmd.PersistentFlags().GetString("server"); server != "" {
		config.SetServerURL(server)
	}
}

// terminalNotifier renders controller notifications as transient stderr lines.
type terminalNotifier struct{}

func (terminalNotifier) Warn(message string)  { fmt.Fprintf(os.Stderr, "! %s\n", message) }
func (terminalNotifier) Error(message string) { fmt.Fprintf(os.Stderr, "✗ %s\n", message) }

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client := api.NewClient(config.ServerURL())
	ctrl := controller.New(client, config.PersonalityStore{}, terminalNotifier{})

	fmt.Printf("bestie — connected to %s\n", config.ServerURL())
	if err := ctrl.Bootstrap(ctx); err != nil {
		return fmt.Errorf("could not reach the server: %w", err)
	}
	printHeader(ctrl.Conversation())

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024)

	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), "/") {
			if quit := runCommand(ctx, ctrl, strings.TrimSpace(line)); quit {
				return nil
			}
			continue
		}

		sendLine(ctx, ctrl, line)
	}
}

// sendLine applies the composer rules (no blank sends, 2000-char cap, one
// send at a time) and renders the reply once the send settles.
func sendLine(ctx context.Context, ctrl *controller.Controller, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if len([]rune(line)) > maxMessageLength {
		fmt.Printf("message too long: %d/%d characters\n", len([]rune(line)), maxMessageLength)
		return
	}
	if ctrl.State() == controller.StatePending {
		fmt.Println("still waiting for the previous reply...")
		return
	}

	done := make(chan struct{})
	go typingIndicator(done)
	err := ctrl.SendMessage(ctx, line)
	close(done)
	fmt.Print("\r        \r")

	if err != nil {
		// The controller already surfaced the detail via the notifier.
		return
	}
	renderLatest(ctrl)
}

// typingIndicator animates three dots while the reply is pending.
func typingIndicator(done <-chan struct{}) {
	frames := []string{".  ", ".. ", "..."}
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fmt.Printf("\rbot %s", frames[i%len(frames)])
			i++
		}
	}
}

// renderLatest prints the newest assistant message and the (possibly newly
// generated) conversation title.
func renderLatest(ctrl *controller.Controller) {
	messages := ctrl.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleAssistant {
			fmt.Printf("bot> %s\n", messages[i].Content)
			break
		}
	}
	if conversation := ctrl.Conversation(); conversation != nil && conversation.Title != model.DefaultConversationTitle {
		fmt.Printf("     [%s]\n", conversation.Title)
	}
}

func printHeader(conversation *model.Conversation) {
	if conversation == nil {
		return
	}
	fmt.Printf("conversation #%d — %s\n\n", conversation.ID, conversation.Title)
}

// runCommand handles slash commands; returns true when the client should exit.
func runCommand(ctx context.Context, ctrl *controller.Controller, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/new":
		if err := ctrl.NewConversation(ctx); err == nil {
			printHeader(ctrl.Conversation())
		}
	case "/clear":
		if err := ctrl.ClearChat(ctx); err == nil {
			printHeader(ctrl.Conversation())
		}
	case "/personality":
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}
		runPersonalityCommand(ctx, ctrl, arg)
	default:
		fmt.Printf("unknown command %s\n", fields[0])
	}
	return false
}

func runPersonalityCommand(ctx context.Context, ctrl *controller.Controller, arg string) {
	store := config.PersonalityStore{}
	switch arg {
	case "":
		raw, err := store.Load()
		if err != nil || raw == "" {
			fmt.Printf("no personality configured — edit %s or run /personality init\n", config.Path())
			return
		}
		fmt.Println(raw)
	case "init":
		if err := ctrl.SavePersonality(defaultPersonalityTemplate); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			return
		}
		fmt.Printf("default personality template saved to %s\n", config.Path())
	case "check":
		raw, err := store.Load()
		if err != nil || raw == "" {
			fmt.Println("no personality configured")
			return
		}
		var cfg model.PersonalityConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			fmt.Printf("invalid: not well-formed JSON (%v)\n", err)
			return
		}
		client := api.NewClient(config.ServerURL())
		result, err := client.ValidatePersonality(ctx, &cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			return
		}
		if result.Valid {
			fmt.Println("personality configuration is valid")
		} else {
			fmt.Printf("invalid: %s\n", result.Error)
		}
	default:
		fmt.Printf("unknown argument %q (expected init or check)\n", arg)
	}
}
