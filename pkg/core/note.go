package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field is a single front-matter entry. Values are carried as strings
// because that is how they travel on the wire (one tag per field).
type Field struct {
	Key   string
	Value string
}

// Fields is an order-preserving set of front-matter entries.
// YAML document order is kept; iteration order is insertion order.
type Fields []Field

// Get returns the value for key and whether it is present.
func (f Fields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Note is the central entity of the domain: a markdown document with an
// optional front-matter block, ready to be turned into a wiki article.
type Note struct {
	Title  string
	Body   string // markdown content with the front-matter block removed
	Fields Fields // parsed front-matter, in document order
}

// frontmatterPattern matches a front-matter block anchored at the very
// start of the text: an opening --- line at byte zero and a closing ---
// line. A block preceded by blank lines, or one that is opened but never
// closed, does not match and is left in the content untouched.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(.*?\r?\n)??---[ \t]*(\r?\n|\z)`)

// StripFrontmatter removes a leading front-matter block (delimiters
// included) and returns the remainder. Text without a well-formed leading
// block is returned unchanged.
func StripFrontmatter(raw string) string {
	loc := frontmatterPattern.FindStringIndex(raw)
	if loc == nil {
		return raw
	}
	return raw[loc[1]:]
}

// Parse reads a stream and decodes it into a Note. The Title is filled
// from the front-matter "title" key if present; otherwise callers derive
// it from the filename.
func Parse(r io.Reader) (*Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw := string(data)
	n := &Note{Body: StripFrontmatter(raw)}

	loc := frontmatterPattern.FindStringSubmatchIndex(raw)
	if loc == nil || loc[2] < 0 {
		return n, nil
	}

	fields, err := parseFields([]byte(raw[loc[2]:loc[3]]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	n.Fields = fields

	if title, ok := fields.Get("title"); ok {
		n.Title = title
	}
	return n, nil
}

// Load reads a note from disk. The title defaults to the filename without
// its extension; a front-matter "title" key overrides it.
func Load(path string) (*Note, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse note %s: %w", path, err)
	}

	if n.Title == "" {
		base := filepath.Base(path)
		n.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return n, nil
}

// parseFields decodes a YAML mapping while preserving key order, which a
// plain map unmarshal would lose.
func parseFields(src []byte) (Fields, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, nil
	}

	var fields Fields
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		fields = append(fields, Field{Key: key.Value, Value: scalarString(mapping.Content[i+1])})
	}
	return fields, nil
}

func scalarString(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	// Lists and nested maps degrade to their flattened form.
	var v any
	if err := node.Decode(&v); err != nil {
		return node.Value
	}
	return fmt.Sprintf("%v", v)
}
