package fixture

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
)

// ContentStore reads and writes the provider-1 JSON fixture. Saves replace
// the whole file; there is no append or merge.
type ContentStore struct {
	path string
}

// NewContentStore creates a store for the fixture at path.
func NewContentStore(path string) *ContentStore {
	return &ContentStore{path: path}
}

// Path returns the fixture file path.
func (s *ContentStore) Path() string {
	return s.path
}

// Load reads and decodes the fixture.
func (s *ContentStore) Load() (*ContentDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read content fixture: %w", err)
	}

	var doc ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content fixture: %w", err)
	}
	return &doc, nil
}

// Save pretty-prints the document with 2-space indentation and overwrites
// the fixture file.
func (s *ContentStore) Save(doc *ContentDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content fixture: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write content fixture: %w", err)
	}
	return nil
}

// FeedStore reads and writes the provider-2 XML fixture.
type FeedStore struct {
	path string
}

// NewFeedStore creates a store for the fixture at path.
func NewFeedStore(path string) *FeedStore {
	return &FeedStore{path: path}
}

// Path returns the fixture file path.
func (s *FeedStore) Path() string {
	return s.path
}

// Load reads and decodes the fixture.
func (s *FeedStore) Load() (*FeedDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read feed fixture: %w", err)
	}

	var doc FeedDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode feed fixture: %w", err)
	}
	return &doc, nil
}

// Save encodes the document with encoding/xml and overwrites the fixture
// file. Used on the update path, where escaping correctness matters more
// than preserving the legacy byte layout.
func (s *FeedStore) Save(doc *FeedDocument) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode feed fixture: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(xml.Header+string(data)), 0644); err != nil {
		return fmt.Errorf("write feed fixture: %w", err)
	}
	return nil
}

// SaveRendered overwrites the fixture file with the legacy hand-assembled
// rendering of items. Used by the generator.
func (s *FeedStore) SaveRendered(items []FeedItem) error {
	if err := os.WriteFile(s.path, RenderFeed(items), 0644); err != nil {
		return fmt.Errorf("write feed fixture: %w", err)
	}
	return nil
}
