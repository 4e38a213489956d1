package dify

import (
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// operation is a tag for one logical API operation
type operation int

// endpoint is an immutable pair of HTTP method and path builder. The
// builder interpolates path parameters into segments without escaping;
// callers supply identifiers which are safe as path segments.
type endpoint struct {
	method string
	path   func(params ...string) []string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	opParameters operation = iota
	opFeedback
	opCompletionMessage
	opChatMessage
	opMessages
	opConversations
	opConversationName
	opConversation
	opFileUpload
	opWorkflowRun
)

// The operation set is closed, so the registry is fixed at process start
var endpoints = map[operation]endpoint{
	opParameters:        {http.MethodGet, fixedPath("parameters")},
	opFeedback:          {http.MethodPost, func(params ...string) []string { return []string{"messages", params[0], "feedbacks"} }},
	opCompletionMessage: {http.MethodPost, fixedPath("completion-messages")},
	opChatMessage:       {http.MethodPost, fixedPath("chat-messages")},
	opMessages:          {http.MethodGet, fixedPath("messages")},
	opConversations:     {http.MethodGet, fixedPath("conversations")},
	opConversationName:  {http.MethodPost, func(params ...string) []string { return []string{"conversations", params[0], "name"} }},
	opConversation:      {http.MethodDelete, func(params ...string) []string { return []string{"conversations", params[0]} }},
	opFileUpload:        {http.MethodPost, fixedPath("files", "upload")},
	opWorkflowRun:       {http.MethodPost, fixedPath("workflows", "run")},
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// fixedPath returns a builder for a path with no parameters
func fixedPath(segments ...string) func(...string) []string {
	return func(...string) []string {
		return segments
	}
}

// resolve returns the request path option for the operation, with any
// path parameters interpolated
func (op operation) resolve(params ...string) client.RequestOpt {
	segments := endpoints[op].path(params...)
	path := make([]any, 0, len(segments))
	for _, segment := range segments {
		path = append(path, segment)
	}
	return client.OptPath(path...)
}

// payload returns a request payload for the operation carrying the given
// body. GET operations carry no body; POST bodies are JSON-encoded; any
// other verb is JSON-encoded with an explicit method.
func (op operation) payload(body any) (client.Payload, error) {
	switch method := endpoints[op].method; method {
	case http.MethodGet:
		return client.NewRequest(), nil
	case http.MethodPost:
		return client.NewJSONRequest(body)
	default:
		return client.NewJSONRequestEx(method, body, "")
	}
}
