package stream

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// MqttConfig describes the broker connection.
type MqttConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientID"`
	QoS      byte   `yaml:"qos"`
	Topics   struct {
		Stream string `yaml:"stream"`
	} `yaml:"topics"`
}

// StreamConfig describes what is drawn and how often.
type StreamConfig struct {
	Pixels         int     `yaml:"pixels"`
	FrameRate      float64 `yaml:"frameRate"`
	TransitionSecs float64 `yaml:"transitionSecs"`
	Animation      string  `yaml:"animation"`
	Watch          bool    `yaml:"watch"`

	SpriteLength int     `yaml:"spriteLength"`
	Chroma       float64 `yaml:"chroma"`
	Luminance    float64 `yaml:"luminance"`

	Background       string `yaml:"background"`
	TwinkleParticles int    `yaml:"twinkleParticles"`
	TwinkleColour    string `yaml:"twinkleColour"`
	Seed             int64  `yaml:"seed"`
}

// HTTPConfig describes the status server.
type HTTPConfig struct {
	Addr   string `yaml:"addr"`
	Static string `yaml:"static"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the top level of the YAML config file.
type Config struct {
	Mqtt   MqttConfig   `yaml:"mqtt"`
	Stream StreamConfig `yaml:"stream"`
	HTTP   HTTPConfig   `yaml:"http"`
	Log    LogConfig    `yaml:"log"`
}

// DefaultConfig returns the values used for anything the file leaves out.
func DefaultConfig() *Config {
	cfg := &Config{
		Mqtt: MqttConfig{
			URL:      "tcp://localhost:1883",
			ClientID: "ledanim",
		},
		Stream: StreamConfig{
			Pixels:           500,
			FrameRate:        30,
			TransitionSecs:   5,
			Animation:        "set.yaml",
			SpriteLength:     60,
			Chroma:           1.0,
			Luminance:        0.05,
			Background:       "#000005",
			TwinkleColour:    "#404040",
			TwinkleParticles: 0,
			Seed:             1,
		},
		HTTP: HTTPConfig{
			Addr:   ":3000",
			Static: "client/dist",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
	cfg.Mqtt.Topics.Stream = "home/xmastree/stream"
	return cfg
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot produce a stream.
func (c *Config) Validate() error {
	var errs []error
	if c.Stream.Pixels <= 0 || c.Stream.Pixels > maxPixels {
		errs = append(errs, fmt.Errorf("stream.pixels must be in 1..%d, got %d", maxPixels, c.Stream.Pixels))
	}
	if c.Stream.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("stream.frameRate must be positive, got %g", c.Stream.FrameRate))
	}
	if c.Stream.SpriteLength <= 0 {
		errs = append(errs, fmt.Errorf("stream.spriteLength must be positive, got %d", c.Stream.SpriteLength))
	}
	if c.Mqtt.QoS > 2 {
		errs = append(errs, fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.Mqtt.QoS))
	}
	if c.Stream.Animation == "" {
		errs = append(errs, errors.New("stream.animation is required"))
	}
	return errors.Join(errs...)
}
