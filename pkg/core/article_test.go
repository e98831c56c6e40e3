package core_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/wikipub/wikipub/pkg/core"
)

func TestBuildArticle_TagOrder(t *testing.T) {
	a := core.BuildArticle("My Title", "body", nil, "science", core.Fields{
		{Key: "foo", Value: "bar"},
	})

	want := []core.Tag{
		{"d", "my-title"},
		{"title", "My Title"},
		{"published_at", a.PublishedAt()},
		{"c", "science"},
		{"foo", "bar"},
	}

	if len(a.Tags) != len(want) {
		t.Fatalf("got %d tags, want %d: %v", len(a.Tags), len(want), a.Tags)
	}
	for i, tag := range want {
		if a.Tags[i] != tag {
			t.Errorf("tag %d = %v, want %v", i, a.Tags[i], tag)
		}
	}
	if a.Kind != core.KindWikiArticle {
		t.Errorf("kind = %d, want %d", a.Kind, core.KindWikiArticle)
	}
	if a.Content != "body" {
		t.Errorf("content = %q, want %q", a.Content, "body")
	}
}

func TestBuildArticle_PublishedAtStability(t *testing.T) {
	prior := &core.Article{
		Kind: core.KindWikiArticle,
		Tags: []core.Tag{
			{"d", "my-title"},
			{"title", "My Title"},
			{"published_at", "1000"},
		},
	}

	a := core.BuildArticle("My Title", "edited body", prior, "", nil)
	if got := a.PublishedAt(); got != "1000" {
		t.Errorf("published_at = %q, want %q (carried forward verbatim)", got, "1000")
	}
}

func TestBuildArticle_PublishedAtFreshness(t *testing.T) {
	before := time.Now().Unix()
	a := core.BuildArticle("New Page", "body", nil, "", nil)
	after := time.Now().Unix()

	got, err := strconv.ParseInt(a.PublishedAt(), 10, 64)
	if err != nil {
		t.Fatalf("published_at %q is not a unix timestamp: %v", a.PublishedAt(), err)
	}
	if got < before || got > after {
		t.Errorf("published_at = %d, want within [%d, %d]", got, before, after)
	}
}

func TestBuildArticle_NoCategoryOmitsTag(t *testing.T) {
	a := core.BuildArticle("Page", "body", nil, "", nil)
	if _, ok := a.TagValue("c"); ok {
		t.Error("empty category must not produce a c tag")
	}
	if len(a.Tags) != 3 {
		t.Errorf("got %d tags, want 3", len(a.Tags))
	}
}

func TestBuildArticle_FieldPassthrough(t *testing.T) {
	fields := core.Fields{
		{Key: "aliases", Value: "Page, The Page"},
		{Key: "status", Value: "draft"},
		{Key: "title", Value: "Page"},
	}
	a := core.BuildArticle("Page", "body", nil, "", fields)

	// Every field becomes exactly one tag, after the required three.
	rest := a.Tags[3:]
	if len(rest) != len(fields) {
		t.Fatalf("got %d field tags, want %d", len(rest), len(fields))
	}
	for i, f := range fields {
		if rest[i] != (core.Tag{f.Key, f.Value}) {
			t.Errorf("field tag %d = %v, want [%s %s]", i, rest[i], f.Key, f.Value)
		}
	}
}

func TestBuildArticle_IdempotentRepublish(t *testing.T) {
	first := core.BuildArticle("My Title", "original body", nil, "science", nil)

	second := core.BuildArticle("My Title", "revised body", &first, "science", nil)

	if first.Slug() != second.Slug() {
		t.Errorf("slugs differ: %q vs %q", first.Slug(), second.Slug())
	}
	if first.PublishedAt() != second.PublishedAt() {
		t.Errorf("published_at differs: %q vs %q", first.PublishedAt(), second.PublishedAt())
	}
	if second.Content != "revised body" {
		t.Errorf("content = %q, want revised body", second.Content)
	}
}

func TestArticle_TagValue(t *testing.T) {
	a := core.Article{Tags: []core.Tag{{"d", "slug"}, {"c", "first"}, {"c", "second"}}}

	if v, ok := a.TagValue("d"); !ok || v != "slug" {
		t.Errorf("TagValue(d) = %q, %v", v, ok)
	}
	// First match wins.
	if v := a.Category(); v != "first" {
		t.Errorf("Category() = %q, want first", v)
	}
	if _, ok := a.TagValue("missing"); ok {
		t.Error("TagValue(missing) reported present")
	}
}
