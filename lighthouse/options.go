package lighthouse

import (
	"time"

	logging "gopkg.in/op/go-logging.v1"
)

var defaultLog = logging.MustGetLogger("lighthouse")

// config collects Connect's optional parameters.
type config struct {
	url         string
	dialTimeout time.Duration
	log         *logging.Logger
	spawner     Spawner
}

func defaultConfig() config {
	return config{
		dialTimeout: 10 * time.Second,
		log:         defaultLog,
		spawner:     defaultSpawner,
	}
}

// Option customizes a Connect call.
type Option func(*config)

// WithURL overrides the default Lighthouse WebSocket URL.
func WithURL(url string) Option {
	return func(c *config) { c.url = url }
}

// WithDialTimeout bounds how long the initial WebSocket handshake may take.
func WithDialTimeout(d time.Duration) Option {
	return func(c *config) { c.dialTimeout = d }
}

// WithLogger routes the client's log output through log instead of the
// package default backend.
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithSpawner routes the detached receive loop and fire-and-forget STOP
// requests through spawner instead of a plain `go` launch.
func WithSpawner(spawner Spawner) Option {
	return func(c *config) {
		if spawner != nil {
			c.spawner = spawner
		}
	}
}
