/*
dify implements an API client for the Dify conversational AI service
(https://docs.dify.ai/api-reference)
*/
package dify

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the base client for a Dify application. It holds the API key
// for the application and the service endpoint, and provides the
// operations shared by the completion and chat clients.
type Client struct {
	*client.Client

	// apiKey may be replaced through UpdateApiKey. There is no locking:
	// concurrent updates and in-flight requests observe either the old
	// or the new key (last-write-wins).
	apiKey string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.dify.ai/v1"
)

const (
	ResponseModeBlocking  = "blocking"
	ResponseModeStreaming = "streaming"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The endpoint defaults to the public Dify service;
// pass client.OptEndpoint to target a self-hosted instance.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, ErrBadParameter.With("missing API key")
	}

	// Create client - the default endpoint goes first so that any
	// caller-supplied endpoint takes precedence
	client, err := client.New(append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		apiKey: apiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UpdateApiKey replaces the API key used for subsequent requests.
// An empty key is rejected before any network activity.
func (c *Client) UpdateApiKey(apiKey string) error {
	if apiKey == "" {
		return ErrBadParameter.With("missing API key")
	}
	c.apiKey = apiKey
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do performs a blocking request. The authorization header is derived
// from the API key at call time, and the response body is decoded into
// out. Transport errors are returned unchanged.
func (c *Client) do(ctx context.Context, payload client.Payload, out any, opts ...client.RequestOpt) error {
	return c.DoWithContext(ctx, payload, out, append([]client.RequestOpt{
		client.OptReqHeader("Authorization", "Bearer "+c.apiKey),
	}, opts...)...)
}

// doStream performs a streaming request and returns a single-pass stream
// of decoded events. The request runs on a goroutine; the stream channel
// is closed when the remote stream ends or fails, after which Err reports
// the terminal error.
func (c *Client) doStream(ctx context.Context, payload client.Payload, opts ...client.RequestOpt) (*Stream, error) {
	stream := newStream()
	opts = append(opts,
		client.OptReqHeader("Accept", "text/event-stream"),
		client.OptNoTimeout(),
		client.OptTextStreamCallback(func(evt client.TextStreamEvent) error {
			return stream.decode(ctx, evt)
		}),
	)
	go func() {
		// Pass a non-nil out so the client decodes the text stream
		var discard struct{}
		stream.finish(c.do(ctx, payload, &discard, opts...))
	}()
	return stream, nil
}
