package dify_test

import (
	"context"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	dify "github.com/mutablelogic/go-dify"
)

func Test_stream_001(t *testing.T) {
	assert := assert.New(t)
	m := newMockService(t)
	m.events = []string{
		`{"event": "message", "answer": "a", "conversation_id": "conv-1"}`,
		`{"event": "ping"}`,
		`{"event": "message", "answer": "b", "conversation_id": "conv-1"}`,
		`{"event": "message_end", "message_id": "msg-1"}`,
	}
	c := newChatClient(t, m)

	stream, err := c.CreateChatMessageStream(context.Background(), dify.ChatRequest{
		Query: "hello",
		User:  "user-1",
	})
	require.NoError(t, err)

	// Events are delivered in order, with keep-alive pings dropped
	var events []dify.StreamEvent
	for evt := range stream.Events() {
		events = append(events, evt)
	}
	assert.NoError(stream.Err())
	if assert.Len(events, 3) {
		assert.Equal("a", events[0].Answer)
		assert.Equal("b", events[1].Answer)
		assert.Equal(dify.EventMessageEnd, events[2].Event)
	}

	// The stream is single-pass: a second drain yields nothing
	count := 0
	for range stream.Events() {
		count++
	}
	assert.Equal(0, count)
}

func Test_stream_002(t *testing.T) {
	assert := assert.New(t)
	m := newMockService(t)
	m.events = []string{
		`{"event": "error", "status": 400, "code": "invalid_param", "message": "bad inputs"}`,
	}
	c := newChatClient(t, m)

	// Service errors mid-stream are delivered as events, undecorated
	stream, err := c.CreateChatMessageStream(context.Background(), dify.ChatRequest{
		Query: "hello",
		User:  "user-1",
	})
	require.NoError(t, err)

	var events []dify.StreamEvent
	for evt := range stream.Events() {
		events = append(events, evt)
	}
	assert.NoError(stream.Err())
	if assert.Len(events, 1) {
		assert.True(events[0].IsError())
		assert.Equal("invalid_param", events[0].Code)
		assert.Equal(400, events[0].Status)
		assert.Equal("bad inputs", events[0].Message)
	}
}

func Test_stream_003(t *testing.T) {
	assert := assert.New(t)
	m := newMockService(t)
	m.status = 500
	c := newChatClient(t, m)

	// A transport failure surfaces through Err after the channel closes,
	// with no retry
	stream, err := c.CreateChatMessageStream(context.Background(), dify.ChatRequest{
		Query: "hello",
		User:  "user-1",
	})
	require.NoError(t, err)

	for range stream.Events() {
		t.Fatal("no events expected")
	}
	assert.Error(stream.Err())
	assert.Len(m.requests, 1)
}
