package dify

import (
	"context"
	"encoding/json"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// AppParameters is the application configuration returned by the service
type AppParameters struct {
	OpeningStatement              string           `json:"opening_statement,omitempty"`
	SuggestedQuestions            []string         `json:"suggested_questions,omitempty"`
	SuggestedQuestionsAfterAnswer *FeatureToggle   `json:"suggested_questions_after_answer,omitempty"`
	SpeechToText                  *FeatureToggle   `json:"speech_to_text,omitempty"`
	RetrieverResource             *FeatureToggle   `json:"retriever_resource,omitempty"`
	AnnotationReply               *FeatureToggle   `json:"annotation_reply,omitempty"`
	UserInputForm                 []map[string]any `json:"user_input_form,omitempty"`
	FileUpload                    map[string]any   `json:"file_upload,omitempty"`
	SystemParameters              map[string]any   `json:"system_parameters,omitempty"`
}

// FeatureToggle reports whether an application feature is enabled
type FeatureToggle struct {
	Enabled bool `json:"enabled"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p AppParameters) String() string {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetApplicationParameters returns the application configuration for the
// given end-user identifier.
func (c *Client) GetApplicationParameters(ctx context.Context, user string) (*AppParameters, error) {
	if user == "" {
		return nil, ErrBadParameter.With("missing user")
	}

	// Request
	payload, err := opParameters.payload(nil)
	if err != nil {
		return nil, err
	}

	// Response
	var response AppParameters
	if err := c.do(ctx, payload, &response, opParameters.resolve(), client.OptQuery(url.Values{"user": []string{user}})); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
