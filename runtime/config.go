package runtime

import "time"

// Config groups the tunables of the pipeline and the delivery simulation.
// Delays are what the simulation feels like to a user: receipts arrive
// quickly, a synthetic reply takes a few seconds.
type Config struct {
	NumWorkers      int
	BufferSize      int
	CharReplacement rune
	SinkTimeout     time.Duration
	MetricInterval  time.Duration
	DeliveredDelay  time.Duration
	SeenDelay       time.Duration
	ReplyMinDelay   time.Duration
	ReplyJitter     time.Duration
}

func DefaultConfig() Config {
	return Config{
		NumWorkers:      4,
		BufferSize:      256,
		CharReplacement: '*',
		SinkTimeout:     2 * time.Second,
		MetricInterval:  5 * time.Second,
		DeliveredDelay:  time.Second,
		SeenDelay:       500 * time.Millisecond,
		ReplyMinDelay:   2 * time.Second,
		ReplyJitter:     2 * time.Second,
	}
}
