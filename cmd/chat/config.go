package main

import (
	"fmt"
	"time"
)

type Config struct {
	BufferSize      int           `env:"BUFFER_SIZE,default=256"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`
	LimitMessages   *int          `env:"LIMIT_MESSAGES"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=5s"`
	DeliveredDelay  time.Duration `env:"DELIVERED_DELAY,default=1s"`
	SeenDelay       time.Duration `env:"SEEN_DELAY,default=500ms"`
	ReplyMinDelay   time.Duration `env:"REPLY_MIN_DELAY,default=2s"`
	ReplyJitter     time.Duration `env:"REPLY_JITTER,default=2s"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	RunDemo         bool          `env:"RUN_DEMO,default=true"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
