package main

import (
	"fmt"
	"time"

	// Packages
	dify "github.com/mutablelogic/go-dify"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListConversationsCmd struct {
	FirstId string `flag:"first-id" help:"Page from this conversation"`
	Limit   *uint  `flag:"limit" help:"Maximum number of conversations"`
	Pinned  *bool  `flag:"pinned" help:"Only pinned (or only unpinned) conversations"`
}

type ListMessagesCmd struct {
	Conversation string `arg:"" optional:"" help:"Conversation identifier"`
	FirstId      string `flag:"first-id" help:"Page from this message"`
	Limit        uint   `flag:"limit" help:"Maximum number of messages"`
}

type RenameCmd struct {
	Conversation string `arg:"" help:"Conversation identifier"`
	Name         string `arg:"" optional:"" help:"New name"`
	AutoGenerate bool   `flag:"auto" help:"Derive the name from the conversation content"`
}

type DeleteCmd struct {
	Conversation string `arg:"" help:"Conversation identifier"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ListConversationsCmd) Run(globals *Globals) error {
	client, err := globals.ChatClient()
	if err != nil {
		return err
	}

	response, err := client.GetConversations(globals.ctx, dify.ConversationsRequest{
		User:    globals.User,
		FirstId: cmd.FirstId,
		Limit:   cmd.Limit,
		Pinned:  cmd.Pinned,
	})
	if err != nil {
		return err
	}

	for _, conversation := range response.Data {
		fmt.Printf("%s  %s  %s\n", conversation.Id, time.Unix(conversation.CreatedAt, 0).Format(time.DateTime), conversation.Name)
	}
	return nil
}

func (cmd *ListMessagesCmd) Run(globals *Globals) error {
	client, err := globals.ChatClient()
	if err != nil {
		return err
	}

	response, err := client.GetConversationMessages(globals.ctx, globals.User,
		dify.WithConversation(cmd.Conversation),
		dify.WithFirstId(cmd.FirstId),
		dify.WithLimit(cmd.Limit),
	)
	if err != nil {
		return err
	}

	for _, message := range response.Data {
		fmt.Printf("%s> %s\n%s\n\n", message.ConversationId, message.Query, message.Answer)
	}
	return nil
}

func (cmd *RenameCmd) Run(globals *Globals) error {
	client, err := globals.ChatClient()
	if err != nil {
		return err
	}

	conversation, err := client.RenameConversation(globals.ctx, cmd.Conversation, cmd.Name, globals.User, cmd.AutoGenerate)
	if err != nil {
		return err
	}

	fmt.Println(conversation.Id, conversation.Name)
	return nil
}

func (cmd *DeleteCmd) Run(globals *Globals) error {
	client, err := globals.ChatClient()
	if err != nil {
		return err
	}
	return client.DeleteConversation(globals.ctx, cmd.Conversation, globals.User)
}
