package dify

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Stream is a live, single-pass sequence of server-sent events from a
// streaming request. Events are delivered exactly once and are not
// buffered beyond a small window; draining the channel a second time
// yields nothing.
type Stream struct {
	events chan StreamEvent
	done   chan struct{}
	err    error
}

// StreamEvent is one decoded server-sent event
type StreamEvent struct {
	Event          string         `json:"event"`
	TaskID         string         `json:"task_id,omitempty"`
	ID             string         `json:"id,omitempty"`
	MessageID      string         `json:"message_id,omitempty"`
	ConversationID string         `json:"conversation_id,omitempty"`
	Answer         string         `json:"answer,omitempty"`
	Audio          string         `json:"audio,omitempty"`
	Thought        string         `json:"thought,omitempty"`
	Observation    string         `json:"observation,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
	Metadata       *Metadata      `json:"metadata,omitempty"`
	CreatedAt      int64          `json:"created_at,omitempty"`

	// Set on event "error"
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EventMessage          = "message"
	EventAgentMessage     = "agent_message"
	EventAgentThought     = "agent_thought"
	EventMessageFile      = "message_file"
	EventMessageEnd       = "message_end"
	EventMessageReplace   = "message_replace"
	EventTTSMessage       = "tts_message"
	EventTTSMessageEnd    = "tts_message_end"
	EventWorkflowStarted  = "workflow_started"
	EventNodeStarted      = "node_started"
	EventNodeFinished     = "node_finished"
	EventWorkflowFinished = "workflow_finished"
	EventError            = "error"
	EventPing             = "ping"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newStream() *Stream {
	return &Stream{
		events: make(chan StreamEvent, 16),
		done:   make(chan struct{}),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Events returns the channel of decoded events. The channel is closed
// when the remote stream ends or the request fails; check Err afterwards.
func (s *Stream) Events() <-chan StreamEvent {
	return s.events
}

// Err blocks until the stream has ended and returns the terminal error,
// or nil when the stream completed normally.
func (s *Stream) Err() error {
	<-s.done
	return s.err
}

// IsError returns true for an error event from the service
func (e StreamEvent) IsError() bool {
	return e.Event == EventError
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// decode parses one text-stream event and delivers it. Keep-alive pings
// and stream terminators are dropped.
func (s *Stream) decode(ctx context.Context, evt client.TextStreamEvent) error {
	data := strings.TrimSpace(evt.Data)
	if data == "" || data == "[DONE]" {
		return nil
	}

	var event StreamEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return err
	}
	if event.Event == EventPing {
		return nil
	}

	select {
	case s.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish records the terminal error and closes the stream
func (s *Stream) finish(err error) {
	s.err = err
	close(s.events)
	close(s.done)
}
