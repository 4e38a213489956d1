package dify

import (
	"context"
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// WorkflowRequest is the body for a workflow run. Unlike chat and
// completion messages the body carries no files field; workflow inputs
// reference files inline where needed.
type WorkflowRequest struct {
	Inputs       map[string]any `json:"inputs"`
	User         string         `json:"user"`
	ResponseMode string         `json:"response_mode"`
}

// WorkflowResponse is the buffered result of a blocking workflow run
type WorkflowResponse struct {
	TaskId        string           `json:"task_id,omitempty"`
	WorkflowRunId string           `json:"workflow_run_id,omitempty"`
	Data          *WorkflowRunData `json:"data,omitempty"`
}

// WorkflowRunData describes one finished workflow run
type WorkflowRunData struct {
	Id          string         `json:"id"`
	WorkflowId  string         `json:"workflow_id,omitempty"`
	Status      string         `json:"status,omitempty"`
	Outputs     map[string]any `json:"outputs,omitempty"`
	Error       string         `json:"error,omitempty"`
	ElapsedTime float64        `json:"elapsed_time,omitempty"`
	TotalTokens uint           `json:"total_tokens,omitempty"`
	TotalSteps  uint           `json:"total_steps,omitempty"`
	CreatedAt   int64          `json:"created_at,omitempty"`
	FinishedAt  int64          `json:"finished_at,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r WorkflowResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RunWorkflow executes a workflow and waits for the buffered result.
func (c *CompletionClient) RunWorkflow(ctx context.Context, req WorkflowRequest) (*WorkflowResponse, error) {
	req.ResponseMode = ResponseModeBlocking

	// Request
	payload, err := opWorkflowRun.payload(req)
	if err != nil {
		return nil, err
	}

	// Response
	var response WorkflowResponse
	if err := c.do(ctx, payload, &response, opWorkflowRun.resolve()); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// RunWorkflowStream executes a workflow and returns a single-pass stream
// of node and workflow events.
func (c *CompletionClient) RunWorkflowStream(ctx context.Context, req WorkflowRequest) (*Stream, error) {
	req.ResponseMode = ResponseModeStreaming

	// Request
	payload, err := opWorkflowRun.payload(req)
	if err != nil {
		return nil, err
	}

	// Response
	return c.doStream(ctx, payload, opWorkflowRun.resolve())
}
