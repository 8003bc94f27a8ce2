package stream

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type publish struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	mqtt.Client

	mu        sync.Mutex
	published []publish
	err       error
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.published = append(c.published, publish{topic, qos, payload.([]byte)})
	}
	return &fakeToken{err: c.err}
}

func (c *fakeClient) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.published)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Mqtt.Topics.Stream = "tree/stream"
	cfg.Mqtt.QoS = 1
	cfg.Stream.FrameRate = 200
	return cfg
}

func TestSendFrame(t *testing.T) {
	client := &fakeClient{}
	s := NewStreamer(client, testConfig(), Solid{Pixels: 7}, discardLogger())

	require.NoError(t, s.SendFrame(0))
	require.Len(t, client.published, 1)
	p := client.published[0]
	assert.Equal(t, "tree/stream", p.topic)
	assert.Equal(t, byte(1), p.qos)
	assert.Equal(t, uint16(7), binary.LittleEndian.Uint16(p.payload))
	assert.Len(t, p.payload, 2+7*3)
}

func TestSendFramePublishError(t *testing.T) {
	client := &fakeClient{err: errors.New("not connected")}
	s := NewStreamer(client, testConfig(), Solid{Pixels: 1}, discardLogger())

	err := s.SendFrame(0)
	assert.ErrorContains(t, err, "not connected")
}

func TestRunStopsOnCancel(t *testing.T) {
	client := &fakeClient{}
	s := NewStreamer(client, testConfig(), Solid{Pixels: 1}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return client.count() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
