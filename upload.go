package dify

import (
	"context"
	"io"

	// Packages
	client "github.com/mutablelogic/go-client"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type reqFileUpload struct {
	User string         `json:"user"`
	File multipart.File `json:"file"`
}

// File describes an uploaded file, referenced from chat and completion
// requests through its identifier
type File struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
	MimeType  string `json:"mime_type"`
	CreatedBy string `json:"created_by,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UploadFile uploads a file on behalf of an end-user, for later reference
// from messages. The request is sent as multipart form data, which
// replaces the default JSON content type.
func (c *Client) UploadFile(ctx context.Context, user, filename string, r io.Reader) (*File, error) {
	if filename == "" || r == nil {
		return nil, ErrBadParameter.With("missing file")
	}

	// Request
	payload, err := client.NewStreamingMultipartRequest(reqFileUpload{
		User: user,
		File: multipart.File{
			Path: filename,
			Body: io.NopCloser(r),
		},
	}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	// Response
	var response File
	if err := c.do(ctx, payload, &response, opFileUpload.resolve()); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
