package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	uuid "github.com/google/uuid"
	godotenv "github.com/joho/godotenv"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Service
	ApiKey string `env:"DIFY_API_KEY" help:"Dify application API key"`
	Url    string `env:"DIFY_URL" help:"Service endpoint (defaults to the public Dify service)"`
	User   string `env:"DIFY_USER" help:"End-user identifier"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	// Messaging
	Chat     ChatCmd     `cmd:"" help:"Send a chat message"`
	Complete CompleteCmd `cmd:"" help:"Send a completion message"`
	Workflow WorkflowCmd `cmd:"" help:"Run a workflow"`

	// Conversations
	Conversations ListConversationsCmd `cmd:"" help:"Return a list of conversations"`
	Messages      ListMessagesCmd      `cmd:"" help:"Return messages in a conversation"`
	Rename        RenameCmd            `cmd:"" help:"Rename a conversation"`
	Delete        DeleteCmd            `cmd:"" help:"Delete a conversation"`

	// Application
	Upload     UploadCmd     `cmd:"" help:"Upload a file"`
	Parameters ParametersCmd `cmd:"" help:"Return application parameters"`
	Feedback   FeedbackCmd   `cmd:"" help:"Rate a message"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load .env if present, before kong reads the environment
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Dify command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Default the end-user identifier to a per-invocation value
	if cli.Globals.User == "" {
		cli.Globals.User = "cli-" + uuid.New().String()
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
