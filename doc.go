// Package wikipub is the Composition Root for the wikipub application.
//
// It connects the core publish flow (Domain Layer) with the relay
// adapter (Protocol Layer): markdown notes with YAML frontmatter go in,
// signed replaceable wiki-article events come out on the configured
// relay set.
//
// Philosophy:
//
// wikipub is deliberately thin. Event signing, id computation and the
// relay wire protocol belong to the protocol library
// (github.com/nbd-wtf/go-nostr); this module only decides what goes into
// an article — slug, title, published_at, category and frontmatter
// fields, in a fixed tag order — and keeps published_at stable across
// republishes so an edited page replaces its predecessor without losing
// its original creation time.
//
// Usage:
//
//	cfg, _ := config.Load(path)
//	session, err := wikipub.Open(ctx, cfg, wikipub.WithLogger(logger))
//	if err != nil { ... }
//	defer session.Close()
//
//	note, _ := core.Load("My Page.md")
//	id, err := session.Service.Republish(ctx, note)
package wikipub
