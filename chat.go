package dify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatClient extends the base client with multi-turn chat and
// conversation management operations
type ChatClient struct {
	*Client
}

// ChatRequest is the body for a chat message. The response mode is set
// by the method performing the request, so that it always matches the
// transport mode. The conversation identifier is omitted from the body
// entirely when empty, which starts a new conversation.
type ChatRequest struct {
	Inputs         map[string]any `json:"inputs"`
	Query          string         `json:"query"`
	User           string         `json:"user"`
	ResponseMode   string         `json:"response_mode"`
	ConversationId string         `json:"conversation_id,omitempty"`
	Files          []FileInput    `json:"files"`
}

// ChatResponse is the fully-buffered answer to a blocking chat message
type ChatResponse struct {
	Event          string    `json:"event,omitempty"`
	TaskId         string    `json:"task_id,omitempty"`
	Id             string    `json:"id,omitempty"`
	MessageId      string    `json:"message_id,omitempty"`
	ConversationId string    `json:"conversation_id,omitempty"`
	Mode           string    `json:"mode,omitempty"`
	Answer         string    `json:"answer"`
	Metadata       *Metadata `json:"metadata,omitempty"`
	CreatedAt      int64     `json:"created_at,omitempty"`
}

// MessagesResponse is a page of messages within a conversation
type MessagesResponse struct {
	Limit   int       `json:"limit,omitempty"`
	HasMore bool      `json:"has_more,omitempty"`
	Data    []Message `json:"data"`
}

// Conversation is one conversation owned by an end-user
type Conversation struct {
	Id        string         `json:"id"`
	Name      string         `json:"name,omitempty"`
	Inputs    map[string]any `json:"inputs,omitempty"`
	Status    string         `json:"status,omitempty"`
	CreatedAt int64          `json:"created_at,omitempty"`
}

// ConversationsResponse is a page of conversations
type ConversationsResponse struct {
	Limit   int            `json:"limit,omitempty"`
	HasMore bool           `json:"has_more,omitempty"`
	Data    []Conversation `json:"data"`
}

// ConversationsRequest defines the query for a conversation listing.
// Unset fields are still sent as empty-valued parameters; the service
// treats them as absent. This deliberately differs from the message
// listing, which omits unset parameters.
type ConversationsRequest struct {
	User    string
	FirstId string
	Limit   *uint
	Pinned  *bool
}

type reqRenameConversation struct {
	Name         string `json:"name"`
	User         string `json:"user"`
	AutoGenerate bool   `json:"auto_generate"`
}

type reqDeleteConversation struct {
	User string `json:"user"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new chat client
func NewChatClient(apiKey string, opts ...client.ClientOpt) (*ChatClient, error) {
	client, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &ChatClient{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST VALUES

// Values converts ConversationsRequest to URL query parameters. All four
// keys are always present.
func (r ConversationsRequest) Values() url.Values {
	result := url.Values{}
	result.Set("user", r.User)
	result.Set("first_id", r.FirstId)
	if r.Limit != nil {
		result.Set("limit", fmt.Sprint(*r.Limit))
	} else {
		result.Set("limit", "")
	}
	if r.Pinned != nil {
		result.Set("pinned", strconv.FormatBool(*r.Pinned))
	} else {
		result.Set("pinned", "")
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateChatMessage sends a chat message and waits for the buffered
// answer. Leave req.ConversationId empty to start a new conversation.
func (c *ChatClient) CreateChatMessage(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	req.ResponseMode = ResponseModeBlocking

	// Request
	payload, err := opChatMessage.payload(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response ChatResponse
	if err := c.do(ctx, payload, &response, opChatMessage.resolve()); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// CreateChatMessageStream sends a chat message and returns a single-pass
// stream of answer events.
func (c *ChatClient) CreateChatMessageStream(ctx context.Context, req ChatRequest) (*Stream, error) {
	req.ResponseMode = ResponseModeStreaming

	// Request
	payload, err := opChatMessage.payload(req)
	if err != nil {
		return nil, err
	}

	// Response
	return c.doStream(ctx, payload, opChatMessage.resolve())
}

// GetConversationMessages returns messages for an end-user. Use
// WithConversation, WithFirstId and WithLimit to scope and paginate;
// unset options are omitted from the query.
func (c *ChatClient) GetConversationMessages(ctx context.Context, user string, opts ...Opt) (*MessagesResponse, error) {
	if user == "" {
		return nil, ErrBadParameter.With("missing user")
	}

	// Apply options
	o, err := apply(opts...)
	if err != nil {
		return nil, err
	}
	query := o.query(conversationKey, firstIdKey, limitKey)
	query.Set("user", user)

	// Request
	payload, err := opMessages.payload(nil)
	if err != nil {
		return nil, err
	}

	// Response
	var response MessagesResponse
	if err := c.do(ctx, payload, &response, opMessages.resolve(), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// GetConversations returns conversations for an end-user.
func (c *ChatClient) GetConversations(ctx context.Context, req ConversationsRequest) (*ConversationsResponse, error) {
	if req.User == "" {
		return nil, ErrBadParameter.With("missing user")
	}

	// Request
	payload, err := opConversations.payload(nil)
	if err != nil {
		return nil, err
	}

	// Response
	var response ConversationsResponse
	if err := c.do(ctx, payload, &response, opConversations.resolve(), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// RenameConversation renames a conversation. When autoGenerate is set
// the service derives a name from the conversation content.
func (c *ChatClient) RenameConversation(ctx context.Context, conversationId, name, user string, autoGenerate bool) (*Conversation, error) {
	if conversationId == "" {
		return nil, ErrBadParameter.With("missing conversation identifier")
	}

	// Request
	payload, err := opConversationName.payload(reqRenameConversation{
		Name:         name,
		User:         user,
		AutoGenerate: autoGenerate,
	})
	if err != nil {
		return nil, err
	}

	// Response
	var response Conversation
	if err := c.do(ctx, payload, &response, opConversationName.resolve(conversationId)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// DeleteConversation deletes a conversation for an end-user.
func (c *ChatClient) DeleteConversation(ctx context.Context, conversationId, user string) error {
	if conversationId == "" {
		return ErrBadParameter.With("missing conversation identifier")
	}

	// Request
	payload, err := opConversation.payload(reqDeleteConversation{
		User: user,
	})
	if err != nil {
		return err
	}

	// Response
	if err := c.do(ctx, payload, nil, opConversation.resolve(conversationId)); err != nil {
		return err
	}

	// Return success
	return nil
}
