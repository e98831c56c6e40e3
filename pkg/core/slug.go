package core

import "strings"

// Slugify derives the stable identifier that distinguishes revisions of
// "the same" article across publishes: lowercase, spaces to hyphens.
// Deliberately nothing more — no trimming, no punctuation handling. Two
// titles differing only in tabs or newlines produce distinct slugs, and
// an empty title produces an empty slug.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
