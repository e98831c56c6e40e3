package core

import (
	"strconv"
	"time"
)

// KindWikiArticle is the fixed event kind for a long-form replaceable
// wiki-style document. A new event with the same d tag and author
// supersedes the prior one on the network.
const KindWikiArticle = 30818

// Tag names used on outbound articles.
const (
	TagSlug        = "d"
	TagTitle       = "title"
	TagPublishedAt = "published_at"
	TagCategory    = "c"
)

// Tag is an ordered [name, value] pair.
type Tag [2]string

// Article is the unit transmitted to the network: an event record before
// signing. Signature, id and timestamp are computed by the protocol
// library at publish time, never here. For articles read back from the
// network, ID, Author and CreatedAt carry what the relays reported.
type Article struct {
	Kind    int    `json:"kind"`
	Content string `json:"content"`
	Tags    []Tag  `json:"tags"`

	ID        string `json:"id,omitempty"`
	Author    string `json:"author,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// TagValue returns the value of the first tag with the given name.
func (a *Article) TagValue(name string) (string, bool) {
	for _, t := range a.Tags {
		if t[0] == name {
			return t[1], true
		}
	}
	return "", false
}

// Slug returns the article's d tag, or "" when absent.
func (a *Article) Slug() string {
	v, _ := a.TagValue(TagSlug)
	return v
}

// Category returns the article's c tag, or "" when absent.
func (a *Article) Category() string {
	v, _ := a.TagValue(TagCategory)
	return v
}

// PublishedAt returns the article's published_at tag, or "" when absent.
func (a *Article) PublishedAt() string {
	v, _ := a.TagValue(TagPublishedAt)
	return v
}

// BuildArticle assembles a complete, correctly-tagged article from
// document state. Pure transformation, no validation: an empty title is
// accepted as-is and yields an empty slug.
//
// published_at must be stable across republishes of the same slug: when a
// prior article carries the tag its value is reused verbatim, so edit
// history preserves the original creation time while content mutates in
// place. Only a first publish stamps the current time.
//
// Tag order is fixed: d, title, published_at, then c when a category is
// set, then one tag per front-matter field in document order.
func BuildArticle(title, body string, prior *Article, category string, fields Fields) Article {
	publishedAt := strconv.FormatInt(time.Now().Unix(), 10)
	if prior != nil {
		if v, ok := prior.TagValue(TagPublishedAt); ok {
			publishedAt = v
		}
	}

	tags := []Tag{
		{TagSlug, Slugify(title)},
		{TagTitle, title},
		{TagPublishedAt, publishedAt},
	}
	if category != "" {
		tags = append(tags, Tag{TagCategory, category})
	}
	for _, f := range fields {
		tags = append(tags, Tag{f.Key, f.Value})
	}

	return Article{
		Kind:    KindWikiArticle,
		Content: body,
		Tags:    tags,
	}
}
