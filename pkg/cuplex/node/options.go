package node

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

// Option configures a node. Nodes spawned from a node inherit its options.
type Option func(*config)

// WithLogger sets the logger used for structural events (spawn, detach,
// merge, receive failures). The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}
