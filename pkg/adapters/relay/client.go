// Package relay adapts the core publish flow to the nostr protocol via
// github.com/nbd-wtf/go-nostr. Event formatting, signing, id computation
// and the relay wire protocol are entirely the library's contract; this
// package only maps domain articles onto library events and back.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nbd-wtf/go-nostr"

	"github.com/wikipub/wikipub/pkg/core"
)

// ErrNoRelays is returned when connecting with an empty relay list.
var ErrNoRelays = errors.New("no relays configured")

// Client is the live handle to the relay set. It is created once at
// startup and reused for all subsequent queries and publishes.
type Client struct {
	sk     string
	pub    string
	relays []*nostr.Relay
	logger *slog.Logger
}

// Connect decodes the signing key and opens a connection to every relay
// in urls, sequentially. Any connection failure surfaces immediately;
// there is no retry.
func Connect(ctx context.Context, privateKey string, urls []string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(urls) == 0 {
		return nil, ErrNoRelays
	}

	sk, pub, err := DecodeKey(privateKey)
	if err != nil {
		return nil, err
	}

	c := &Client{sk: sk, pub: pub, logger: logger}
	for _, url := range urls {
		logger.Debug("connecting to relay", "url", url)
		r, err := nostr.RelayConnect(ctx, url)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
		}
		c.relays = append(c.relays, r)
	}
	return c, nil
}

// PublicKey returns the hex public key of the signing identity.
func (c *Client) PublicKey() string {
	return c.pub
}

// Close disconnects from all relays.
func (c *Client) Close() {
	for _, r := range c.relays {
		_ = r.Close()
	}
	c.relays = nil
}

// FindLatest implements core.Network. It asks every relay for the newest
// article matching {kind, d = slug, author = signing identity} and keeps
// the one with the highest creation time. Returns nil when no relay has
// one.
func (c *Client) FindLatest(ctx context.Context, slug string) (*core.Article, error) {
	filter := nostr.Filter{
		Kinds:   []int{core.KindWikiArticle},
		Authors: []string{c.pub},
		Tags:    nostr.TagMap{core.TagSlug: []string{slug}},
		Limit:   1,
	}

	var latest *nostr.Event
	for _, r := range c.relays {
		events, err := r.QuerySync(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("query on %s failed: %w", r.URL, err)
		}
		for _, ev := range events {
			if latest == nil || ev.CreatedAt > latest.CreatedAt {
				latest = ev
			}
		}
	}

	if latest == nil {
		return nil, nil
	}
	c.logger.Debug("found prior article", "slug", slug, "id", latest.ID, "created_at", latest.CreatedAt)
	return FromEvent(latest), nil
}

// Broadcast implements core.Network. It signs the article and writes it
// to each relay in order. The first rejection aborts the remaining
// writes; relays already written keep the event (last write wins per
// relay on overlapping publishes).
func (c *Client) Broadcast(ctx context.Context, a core.Article) (string, error) {
	ev := ToEvent(a)
	ev.CreatedAt = nostr.Now()

	if err := ev.Sign(c.sk); err != nil {
		return "", fmt.Errorf("failed to sign event: %w", err)
	}

	for _, r := range c.relays {
		if err := r.Publish(ctx, ev); err != nil {
			return "", fmt.Errorf("publish to %s failed: %w", r.URL, err)
		}
		c.logger.Debug("published to relay", "url", r.URL, "id", ev.ID)
	}
	return ev.ID, nil
}

// ToEvent maps a domain article onto an unsigned library event.
func ToEvent(a core.Article) nostr.Event {
	tags := make(nostr.Tags, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, nostr.Tag{t[0], t[1]})
	}
	return nostr.Event{
		Kind:    a.Kind,
		Content: a.Content,
		Tags:    tags,
	}
}

// FromEvent maps a library event received from a relay back into the
// domain. Tags with fewer than two elements are dropped.
func FromEvent(ev *nostr.Event) *core.Article {
	a := &core.Article{
		Kind:      ev.Kind,
		Content:   ev.Content,
		ID:        ev.ID,
		Author:    ev.PubKey,
		CreatedAt: int64(ev.CreatedAt),
	}
	for _, t := range ev.Tags {
		if len(t) < 2 {
			continue
		}
		a.Tags = append(a.Tags, core.Tag{t[0], t[1]})
	}
	return a
}
