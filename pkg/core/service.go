package core

import (
	"context"
	"fmt"
	"log/slog"
)

// Service handles the publish flow for notes.
type Service struct {
	net    Network
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to the
// default slog logger.
func NewService(net Network, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{net: net, logger: logger}
}

// Lookup queries the relays for the most recent article under slug.
// Returns nil without error when nothing has been published yet.
func (s *Service) Lookup(ctx context.Context, slug string) (*Article, error) {
	s.logger.Debug("looking up prior article", "slug", slug)
	prior, err := s.net.FindLatest(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %q: %w", slug, err)
	}
	return prior, nil
}

// Publish builds the article for n and broadcasts it. The prior article,
// usually obtained from Lookup, keeps published_at stable across
// republishes; pass nil for a first publish. Returns the event id.
//
// One publish runs to completion or to a surfaced failure; there is no
// retry and no timeout beyond what ctx carries.
func (s *Service) Publish(ctx context.Context, n *Note, category string, prior *Article) (string, error) {
	article := BuildArticle(n.Title, n.Body, prior, category, n.Fields)

	s.logger.Info("publishing article",
		"slug", article.Slug(),
		"title", n.Title,
		"published_at", article.PublishedAt(),
		"replaces", prior != nil,
	)

	id, err := s.net.Broadcast(ctx, article)
	if err != nil {
		return "", fmt.Errorf("failed to publish %q: %w", article.Slug(), err)
	}

	s.logger.Info("article published", "slug", article.Slug(), "id", id)
	return id, nil
}

// Republish runs the full non-interactive flow for a note: look up the
// prior article, carry its category forward, publish. Used by watch mode
// where no prompt is possible.
func (s *Service) Republish(ctx context.Context, n *Note) (string, error) {
	prior, err := s.Lookup(ctx, Slugify(n.Title))
	if err != nil {
		return "", err
	}
	category := ""
	if prior != nil {
		category = prior.Category()
	}
	return s.Publish(ctx, n, category, prior)
}
