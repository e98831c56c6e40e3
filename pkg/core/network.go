package core

import "context"

// Network defines the contract for the relay set. Adhering to this
// interface keeps the core independent of the protocol library and lets
// tests run without a live relay.
type Network interface {
	// FindLatest returns the most recent article published by the
	// current signing identity under the given slug, or nil when the
	// relays know of none.
	FindLatest(ctx context.Context, slug string) (*Article, error)

	// Broadcast signs the article and publishes it to every configured
	// relay, returning the event id assigned at signing time.
	Broadcast(ctx context.Context, a Article) (string, error)
}
