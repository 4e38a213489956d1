package dify

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Rating is an end-user verdict on a message
type Rating string

type reqFeedback struct {
	Rating Rating `json:"rating"`
	User   string `json:"user"`
}

// FeedbackResponse acknowledges recorded feedback
type FeedbackResponse struct {
	Result string `json:"result"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MessageFeedback records an end-user rating against a message.
func (c *Client) MessageFeedback(ctx context.Context, messageId string, rating Rating, user string) (*FeedbackResponse, error) {
	if messageId == "" {
		return nil, ErrBadParameter.With("missing message identifier")
	}

	// Request
	payload, err := opFeedback.payload(reqFeedback{
		Rating: rating,
		User:   user,
	})
	if err != nil {
		return nil, err
	}

	// Response
	var response FeedbackResponse
	if err := c.do(ctx, payload, &response, opFeedback.resolve(messageId)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
