package stream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client  mqtt.Client
	topic   string
	qos     byte
	pattern Pattern
	period  time.Duration
	log     *slog.Logger
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client mqtt.Client, cfg *Config, pattern Pattern, logger *slog.Logger) *Streamer {
	return &Streamer{
		client:  client,
		topic:   cfg.Mqtt.Topics.Stream,
		qos:     cfg.Mqtt.QoS,
		pattern: pattern,
		period:  time.Duration(float64(time.Second) / cfg.Stream.FrameRate),
		log:     logger.With("component", "streamer"),
	}
}

// SendFrame renders the frame for elapsed and publishes it as binary over
// MQTT.
func (s *Streamer) SendFrame(elapsed time.Duration) error {
	f := s.pattern.CalculateFrame(elapsed)
	b, err := f.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	if err := token.Error(); err != nil {
		framesDropped.Inc()
		return fmt.Errorf("publish frame: %w", err)
	}
	framesPublished.Inc()
	return nil
}

// Run sends frames at the configured rate until ctx is cancelled. Failed
// frames are logged and skipped.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.period)
	defer publishTimer.Stop()

	start := time.Now()
	s.log.Info("streaming", "topic", s.topic, "period", s.period)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("stopped streaming")
			return nil
		case now := <-publishTimer.C:
			if err := s.SendFrame(now.Sub(start)); err != nil {
				s.log.Warn("frame dropped", "error", err)
			}
		}
	}
}
