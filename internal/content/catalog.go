// Package content is the read-only question store: a fixed catalog of
// multiple-choice questions, category metadata, and topic guides embedded
// in the binary. The catalog is loaded and validated once at startup.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed questions.json
var catalogJSON []byte

//go:embed guides.json
var guidesJSON []byte

// Catalog is the loaded question store.
type Catalog struct {
	categories []CategoryInfo
	questions  []Question
	guides     []TopicGuide
	byID       map[string]*Question
	byCategory map[Category][]*Question
	tags       map[string]struct{}
}

type catalogFile struct {
	Version    int            `json:"version"`
	Categories []CategoryInfo `json:"categories"`
	Questions  []Question     `json:"questions"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return load(catalogJSON, guidesJSON)
}

func load(catalogRaw, guidesRaw []byte) (*Catalog, error) {
	if err := validateCatalog(catalogRaw); err != nil {
		return nil, fmt.Errorf("catalog schema: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(catalogRaw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		categories: file.Categories,
		questions:  file.Questions,
		byID:       make(map[string]*Question, len(file.Questions)),
		byCategory: make(map[Category][]*Question),
		tags:       make(map[string]struct{}),
	}

	for i := range c.questions {
		q := &c.questions[i]
		if !q.Category.Valid() {
			return nil, fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
		}
		if q.CorrectIndex >= len(q.Choices) {
			return nil, fmt.Errorf("question %s: correct index %d out of range", q.ID, q.CorrectIndex)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %s", q.ID)
		}
		c.byID[q.ID] = q
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q)
		for _, tag := range q.Tags {
			c.tags[tag] = struct{}{}
		}
	}

	if len(guidesRaw) > 0 {
		if err := json.Unmarshal(guidesRaw, &c.guides); err != nil {
			return nil, fmt.Errorf("parse guides: %w", err)
		}
	}

	return c, nil
}

// validateCatalog checks raw JSON against the catalog schema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema://catalog.json", catalogSchema); err != nil {
		return fmt.Errorf("add resource: %w", err)
	}
	compiled, err := compiler.Compile("schema://catalog.json")
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Lookup returns the question with the given ID, or false if unknown.
func (c *Catalog) Lookup(id string) (*Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []Question {
	return c.questions
}

// ByCategory returns the questions of one category in catalog order.
func (c *Catalog) ByCategory(cat Category) []*Question {
	return c.byCategory[cat]
}

// Categories returns category display metadata in catalog order.
func (c *Catalog) Categories() []CategoryInfo {
	return c.categories
}

// Guides returns all topic guides.
func (c *Catalog) Guides() []TopicGuide {
	return c.guides
}

// KnownTag reports whether tag appears on at least one catalog question.
// The aggregator uses this to reject arbitrary tag strings.
func (c *Catalog) KnownTag(tag string) bool {
	_, ok := c.tags[tag]
	return ok
}

// Tags returns the sorted set of all tags in the catalog.
func (c *Catalog) Tags() []string {
	out := make([]string, 0, len(c.tags))
	for tag := range c.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
