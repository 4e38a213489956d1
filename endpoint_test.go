package dify

import (
	"net/http"
	"strings"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_endpoint_001(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		op     operation
		params []string
		method string
		path   string
	}{
		{opParameters, nil, http.MethodGet, "parameters"},
		{opFeedback, []string{"m1"}, http.MethodPost, "messages/m1/feedbacks"},
		{opCompletionMessage, nil, http.MethodPost, "completion-messages"},
		{opChatMessage, nil, http.MethodPost, "chat-messages"},
		{opMessages, nil, http.MethodGet, "messages"},
		{opConversations, nil, http.MethodGet, "conversations"},
		{opConversationName, []string{"c1"}, http.MethodPost, "conversations/c1/name"},
		{opConversation, []string{"c1"}, http.MethodDelete, "conversations/c1"},
		{opFileUpload, nil, http.MethodPost, "files/upload"},
		{opWorkflowRun, nil, http.MethodPost, "workflows/run"},
	}

	for _, test := range tests {
		endpoint := endpoints[test.op]
		assert.Equal(test.method, endpoint.method)
		assert.Equal(test.path, strings.Join(endpoint.path(test.params...), "/"))
	}
}

func Test_endpoint_002(t *testing.T) {
	assert := assert.New(t)

	// Path builders are pure: repeated calls yield the same result
	first := endpoints[opConversationName].path("c1")
	second := endpoints[opConversationName].path("c1")
	assert.Equal(first, second)
}
