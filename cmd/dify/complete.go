package main

import (
	"fmt"
	"strings"

	// Packages
	dify "github.com/mutablelogic/go-dify"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CompleteCmd struct {
	Input    []string `flag:"input" short:"i" help:"Application input as key=value"`
	NoStream bool     `flag:"no-stream" help:"Do not stream output"`
}

type WorkflowCmd struct {
	Input    []string `flag:"input" short:"i" help:"Workflow input as key=value"`
	NoStream bool     `flag:"no-stream" help:"Do not stream output"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CompleteCmd) Run(globals *Globals) error {
	client, err := globals.CompletionClient()
	if err != nil {
		return err
	}

	inputs, err := parseInputs(cmd.Input)
	if err != nil {
		return err
	}
	req := dify.CompletionRequest{
		Inputs: inputs,
		User:   globals.User,
	}

	// Blocking mode
	if cmd.NoStream {
		response, err := client.CreateCompletionMessage(globals.ctx, req)
		if err != nil {
			return err
		}
		fmt.Println(response.Answer)
		return nil
	}

	// Streaming mode
	stream, err := client.CreateCompletionMessageStream(globals.ctx, req)
	if err != nil {
		return err
	}
	for evt := range stream.Events() {
		switch evt.Event {
		case dify.EventMessage:
			fmt.Print(evt.Answer)
		case dify.EventMessageEnd:
			fmt.Println()
		case dify.EventError:
			return fmt.Errorf("%s: %s", evt.Code, evt.Message)
		}
	}
	return stream.Err()
}

func (cmd *WorkflowCmd) Run(globals *Globals) error {
	client, err := globals.CompletionClient()
	if err != nil {
		return err
	}

	inputs, err := parseInputs(cmd.Input)
	if err != nil {
		return err
	}
	req := dify.WorkflowRequest{
		Inputs: inputs,
		User:   globals.User,
	}

	// Blocking mode
	if cmd.NoStream {
		response, err := client.RunWorkflow(globals.ctx, req)
		if err != nil {
			return err
		}
		fmt.Println(response)
		return nil
	}

	// Streaming mode
	stream, err := client.RunWorkflowStream(globals.ctx, req)
	if err != nil {
		return err
	}
	for evt := range stream.Events() {
		switch evt.Event {
		case dify.EventWorkflowStarted, dify.EventNodeStarted, dify.EventNodeFinished, dify.EventWorkflowFinished:
			fmt.Println(evt.Event, evt.Data)
		case dify.EventError:
			return fmt.Errorf("%s: %s", evt.Code, evt.Message)
		}
	}
	return stream.Err()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// parseInputs converts key=value arguments into an inputs map
func parseInputs(args []string) (map[string]any, error) {
	inputs := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid input %q, expected key=value", arg)
		}
		inputs[key] = value
	}
	return inputs, nil
}
