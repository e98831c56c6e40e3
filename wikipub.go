package wikipub

import (
	"context"
	"log/slog"

	"github.com/wikipub/wikipub/pkg/adapters/relay"
	"github.com/wikipub/wikipub/pkg/config"
	"github.com/wikipub/wikipub/pkg/core"
)

// Version exposes the version of the tool.
const Version = "0.1.0"

// options holds the internal configuration for a Session.
type options struct {
	logger *slog.Logger
	key    string
	relays []string
}

// Option defines a functional option for configuring a Session.
type Option func(*options)

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithKey overrides the private key from the configuration.
func WithKey(encoded string) Option {
	return func(o *options) {
		o.key = encoded
	}
}

// WithRelays overrides the relay list from the configuration.
func WithRelays(urls []string) Option {
	return func(o *options) {
		o.relays = urls
	}
}

// Session bundles the live relay handle with the publish service. It is
// created once at startup and reused for all queries and publishes.
type Session struct {
	Service *core.Service
	Client  *relay.Client
}

// Open decodes the signing key, connects to the relay set and returns a
// ready session. Credential or connection failures surface here, at
// first use.
func Open(ctx context.Context, cfg config.Config, opts ...Option) (*Session, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	key := cfg.PrivateKey
	if o.key != "" {
		key = o.key
	}
	relays := cfg.RelayList()
	if o.relays != nil {
		relays = o.relays
	}

	client, err := relay.Connect(ctx, key, relays, o.logger)
	if err != nil {
		return nil, err
	}

	return &Session{
		Service: core.NewService(client, o.logger),
		Client:  client,
	}, nil
}

// Close disconnects the session from all relays.
func (s *Session) Close() {
	s.Client.Close()
}
