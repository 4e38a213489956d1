package main

import (
	"fmt"

	// Packages
	dify "github.com/mutablelogic/go-dify"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Query        string   `arg:"" help:"Message to send"`
	Conversation string   `flag:"conversation" short:"c" help:"Continue an existing conversation"`
	Input        []string `flag:"input" short:"i" help:"Application input as key=value"`
	NoStream     bool     `flag:"no-stream" help:"Do not stream output"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	client, err := globals.ChatClient()
	if err != nil {
		return err
	}

	inputs, err := parseInputs(cmd.Input)
	if err != nil {
		return err
	}
	req := dify.ChatRequest{
		Inputs:         inputs,
		Query:          cmd.Query,
		User:           globals.User,
		ConversationId: cmd.Conversation,
	}

	// Blocking mode
	if cmd.NoStream {
		response, err := client.CreateChatMessage(globals.ctx, req)
		if err != nil {
			return err
		}
		fmt.Println(response.Answer)
		return nil
	}

	// Streaming mode
	stream, err := client.CreateChatMessageStream(globals.ctx, req)
	if err != nil {
		return err
	}
	for evt := range stream.Events() {
		switch evt.Event {
		case dify.EventMessage, dify.EventAgentMessage:
			fmt.Print(evt.Answer)
		case dify.EventMessageEnd:
			fmt.Println()
		case dify.EventError:
			return fmt.Errorf("%s: %s", evt.Code, evt.Message)
		}
	}
	return stream.Err()
}
