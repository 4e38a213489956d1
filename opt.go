package dify

import (
	"fmt"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which sets query parameters on a listing request
type Opt func(*opts) error

// set of options
type opts struct {
	url.Values
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	conversationKey = "conversation_id"
	firstIdKey      = "first_id"
	limitKey        = "limit"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// apply returns a structure of applied options
func apply(o ...Opt) (*opts, error) {
	opts := &opts{Values: make(url.Values)}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithConversation scopes a message listing to one conversation.
// An empty identifier leaves the parameter unset.
func WithConversation(id string) Opt {
	return func(o *opts) error {
		if id != "" {
			o.Set(conversationKey, id)
		}
		return nil
	}
}

// WithFirstId sets the identifier of the first record to page from.
// An empty identifier leaves the parameter unset.
func WithFirstId(id string) Opt {
	return func(o *opts) error {
		if id != "" {
			o.Set(firstIdKey, id)
		}
		return nil
	}
}

// WithLimit caps the number of records returned. Zero leaves the
// parameter unset.
func WithLimit(limit uint) Opt {
	return func(o *opts) error {
		if limit > 0 {
			o.Set(limitKey, fmt.Sprint(limit))
		}
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// query projects the given keys into a new query, skipping unset keys
func (o *opts) query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok {
			query[key] = value
		}
	}
	return query
}
