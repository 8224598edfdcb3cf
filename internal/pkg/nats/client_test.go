package nats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("invalid://address", "test")

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_NotConnected(t *testing.T) {
	var client *Client

	assert.False(t, client.IsConnected())
	assert.NotPanics(t, client.Close)

	err := (&Client{}).Publish("trip.booked", []byte("{}"))
	assert.Error(t, err)
}

func TestClient_PublishJSONMarshalError(t *testing.T) {
	err := (&Client{}).PublishJSON("trip.booked", math.Inf(1))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
