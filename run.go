package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/matt-g-everett/ledanim/anim"
	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/stream"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newLogger(cfg stream.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newMqttClient(cfg stream.MqttConfig, logger *slog.Logger) mqtt.Client {
	log := logger.With("component", "mqtt")
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID + "-" + uuid.NewString()[:8]).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(mqtt.Client) {
			log.Info("connected", "broker", cfg.URL)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn("connection lost", "error", err)
		})
	return mqtt.NewClient(options)
}

// describe reports the animation a pattern is playing, if any.
func describe(p stream.Pattern) (anim.Animation, bool) {
	s, ok := p.(*stream.Sprite)
	if !ok {
		return nil, false
	}
	return s.Animation(), true
}

func runStream(cmd *cobra.Command, args []string) error {
	cfg, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Log)
	mqtt.ERROR = slog.NewLogLogger(logger.Handler(), slog.LevelError)
	logger.Info("config loaded", "path", configPath, "pixels", cfg.Stream.Pixels, "frameRate", cfg.Stream.FrameRate)

	load := stream.SpriteLoader(cfg.Stream)
	pattern, err := load(cfg.Stream.Animation)
	if err != nil {
		return fmt.Errorf("load animation: %w", err)
	}
	transition := time.Duration(cfg.Stream.TransitionSecs * float64(time.Second))
	controller := stream.NewController(pattern, transition)

	client := newMqttClient(cfg.Mqtt, logger)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect %s: %w", cfg.Mqtt.URL, token.Error())
	}
	defer client.Disconnect(250)

	started := time.Now()
	status := func() api.Status {
		st := api.Status{
			Animation: cfg.Stream.Animation,
			Pixels:    cfg.Stream.Pixels,
			FrameRate: cfg.Stream.FrameRate,
			Uptime:    time.Since(started),
		}
		controller.Describe(func(p stream.Pattern) {
			a, ok := describe(p)
			if !ok {
				return
			}
			st.Duration = a.Duration()
			st.DurationHint = a.ComputeDurationHint()
			st.HasAlpha = a.HasAlpha()
			if set, ok := a.(*anim.Set); ok {
				st.Children = set.Len()
				st.Description = fmt.Sprintf("set, %s", set.Ordering())
			}
		})
		return st
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stream.NewStreamer(client, cfg, controller, logger).Run(ctx)
	})
	g.Go(func() error {
		return api.NewServer(cfg.HTTP.Addr, cfg.HTTP.Static, status, logger).Serve(ctx)
	})
	if cfg.Stream.Watch {
		g.Go(func() error {
			return stream.NewWatcher(cfg.Stream.Animation, load, controller, logger).Run(ctx)
		})
	}

	return g.Wait()
}
