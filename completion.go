package dify

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// CompletionClient extends the base client with single-turn completion
// and workflow operations
type CompletionClient struct {
	*Client
}

// CompletionRequest is the body for a completion message. The response
// mode is set by the method performing the request, so that it always
// matches the transport mode.
type CompletionRequest struct {
	Inputs       map[string]any `json:"inputs"`
	User         string         `json:"user"`
	ResponseMode string         `json:"response_mode"`
	Files        []FileInput    `json:"files"`
}

// CompletionResponse is the fully-buffered answer to a blocking
// completion message
type CompletionResponse struct {
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

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new completion client
func NewCompletionClient(apiKey string, opts ...client.ClientOpt) (*CompletionClient, error) {
	client, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &CompletionClient{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CompletionResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateCompletionMessage sends a completion message and waits for the
// buffered answer.
func (c *CompletionClient) CreateCompletionMessage(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	req.ResponseMode = ResponseModeBlocking

	// Request
	payload, err := opCompletionMessage.payload(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response CompletionResponse
	if err := c.do(ctx, payload, &response, opCompletionMessage.resolve()); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// CreateCompletionMessageStream sends a completion message and returns a
// single-pass stream of answer events.
func (c *CompletionClient) CreateCompletionMessageStream(ctx context.Context, req CompletionRequest) (*Stream, error) {
	req.ResponseMode = ResponseModeStreaming

	// Request
	payload, err := opCompletionMessage.payload(req)
	if err != nil {
		return nil, err
	}

	// Response
	return c.doStream(ctx, payload, opCompletionMessage.resolve())
}
