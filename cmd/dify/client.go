package main

import (
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	dify "github.com/mutablelogic/go-dify"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientOpts returns the client options derived from the global flags
func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.Url != "" {
		opts = append(opts, client.OptEndpoint(g.Url))
	}
	return opts
}

// ChatClient returns a chat client configured from the global flags
func (g *Globals) ChatClient() (*dify.ChatClient, error) {
	return dify.NewChatClient(g.ApiKey, g.clientOpts()...)
}

// CompletionClient returns a completion client configured from the global flags
func (g *Globals) CompletionClient() (*dify.CompletionClient, error) {
	return dify.NewCompletionClient(g.ApiKey, g.clientOpts()...)
}

// Client returns a base client configured from the global flags
func (g *Globals) Client() (*dify.Client, error) {
	return dify.New(g.ApiKey, g.clientOpts()...)
}
