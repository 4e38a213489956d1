package dify_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	dify "github.com/mutablelogic/go-dify"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK SERVICE

// mockRequest captures one request as seen by the service
type mockRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

// mockService simulates the Dify HTTP surface. It records every request
// and can be set to fail with a fixed status or to answer with a
// sequence of server-sent events.
type mockService struct {
	*httptest.Server

	requests []mockRequest
	status   int      // when set, every request fails with this status
	events   []string // SSE data payloads for streaming answers
}

func newMockService(t *testing.T) *mockService {
	t.Helper()
	m := new(mockService)
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

// Endpoint returns the mock service endpoint including the API base path
func (m *mockService) Endpoint() string {
	return m.Server.URL + "/v1"
}

// Last returns the most recent request
func (m *mockService) Last(t *testing.T) mockRequest {
	t.Helper()
	if len(m.requests) == 0 {
		t.Fatal("no requests recorded")
	}
	return m.requests[len(m.requests)-1]
}

func (m *mockService) handle(w http.ResponseWriter, r *http.Request) {
	req := mockRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	}
	switch ct := r.Header.Get("Content-Type"); {
	case strings.HasPrefix(ct, "multipart/form-data"):
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			body := map[string]any{}
			for key, values := range r.MultipartForm.Value {
				body[key] = values[0]
			}
			if file, header, err := r.FormFile("file"); err == nil {
				data, _ := io.ReadAll(file)
				file.Close()
				body["file"] = string(data)
				body["filename"] = header.Filename
			}
			req.Body = body
		}
	case ct != "" && r.Body != nil:
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			req.Body = body
		}
	}
	m.requests = append(m.requests, req)

	if m.status != 0 {
		http.Error(w, http.StatusText(m.status), m.status)
		return
	}

	// Streaming answer when the body requests it
	if mode, _ := req.Body["response_mode"].(string); mode == "streaming" {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for _, data := range m.events {
			fmt.Fprintf(w, "data: %s\n\n", data)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/v1/chat-messages", "/v1/completion-messages":
		json.NewEncoder(w).Encode(map[string]any{
			"event":           "message",
			"message_id":      "msg-1",
			"conversation_id": "conv-1",
			"mode":            "chat",
			"answer":          "hello",
			"created_at":      1700000000,
		})
	case "/v1/workflows/run":
		json.NewEncoder(w).Encode(map[string]any{
			"task_id":         "task-1",
			"workflow_run_id": "run-1",
			"data":            map[string]any{"id": "run-1", "status": "succeeded"},
		})
	case "/v1/messages":
		json.NewEncoder(w).Encode(map[string]any{
			"limit": 20,
			"data":  []map[string]any{{"id": "msg-1", "conversation_id": "conv-1", "query": "hi", "answer": "hello"}},
		})
	case "/v1/conversations":
		json.NewEncoder(w).Encode(map[string]any{
			"limit": 20,
			"data":  []map[string]any{{"id": "conv-1", "name": "First"}},
		})
	case "/v1/parameters":
		json.NewEncoder(w).Encode(map[string]any{
			"opening_statement":   "welcome",
			"suggested_questions": []string{"what?"},
		})
	case "/v1/files/upload":
		json.NewEncoder(w).Encode(map[string]any{
			"id":        "file-1",
			"name":      "test.txt",
			"size":      11,
			"extension": "txt",
			"mime_type": "text/plain",
		})
	default:
		// Rename, delete and feedback answer with a plain result
		json.NewEncoder(w).Encode(map[string]any{"result": "success", "id": "conv-1", "name": "Renamed"})
	}
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newChatClient(t *testing.T, m *mockService) *dify.ChatClient {
	t.Helper()
	c, err := dify.NewChatClient("test-key", client.OptEndpoint(m.Endpoint()))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newCompletionClient(t *testing.T, m *mockService) *dify.CompletionClient {
	t.Helper()
	c, err := dify.NewCompletionClient("test-key", client.OptEndpoint(m.Endpoint()))
	if err != nil {
		t.Fatal(err)
	}
	return c
}
