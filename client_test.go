package dify_test

import (
	"context"
	"testing"

	// Packages
	client "github.com/mutablelogic/go-client"
	dify "github.com/mutablelogic/go-dify"
	assert "github.com/stretchr/testify/assert"
)

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	c, err := dify.New("test-key")
	if assert.NoError(err) {
		assert.NotNil(c)
	}
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	// A missing API key is rejected before any network activity
	_, err := dify.New("")
	assert.ErrorIs(err, dify.ErrBadParameter)
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)
	c, err := dify.New("test-key")
	assert.NoError(err)

	// An empty replacement key is rejected
	assert.ErrorIs(c.UpdateApiKey(""), dify.ErrBadParameter)
	assert.NoError(c.UpdateApiKey("other-key"))
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)
	m := newMockService(t)
	c := newChatClient(t, m)

	// The authorization header reflects the most recently set key
	_, err := c.GetApplicationParameters(context.Background(), "user-1")
	assert.NoError(err)
	assert.Equal("Bearer test-key", m.Last(t).Header.Get("Authorization"))

	assert.NoError(c.UpdateApiKey("rotated-key"))
	_, err = c.GetApplicationParameters(context.Background(), "user-1")
	assert.NoError(err)
	assert.Equal("Bearer rotated-key", m.Last(t).Header.Get("Authorization"))
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)
	m := newMockService(t)
	m.status = 500
	c := newChatClient(t, m)

	// A transport failure propagates unchanged, with no retry
	_, err := c.GetApplicationParameters(context.Background(), "user-1")
	assert.Error(err)
	assert.Len(m.requests, 1)
}

func Test_client_006(t *testing.T) {
	assert := assert.New(t)
	m := newMockService(t)

	// The endpoint option overrides the public service default
	c, err := dify.New("test-key", client.OptEndpoint(m.Endpoint()))
	assert.NoError(err)

	_, err = c.GetApplicationParameters(context.Background(), "user-1")
	assert.NoError(err)
	assert.Equal("/v1/parameters", m.Last(t).Path)
}
