package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledanim_frames_published_total",
		Help: "Frames delivered to the broker.",
	})

	framesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledanim_frames_dropped_total",
		Help: "Frames the broker did not accept.",
	})

	reloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledanim_animation_reloads_total",
		Help: "Animation markup reloads by result.",
	}, []string{"result"})
)
