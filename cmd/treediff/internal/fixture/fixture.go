// Package fixture loads tree-layout fixtures for the treediff tool.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/listkit/pkg/content"
)

// Section is one section of a layout fixture.
type Section struct {
	ID     string   `yaml:"id"`
	Header string   `yaml:"header,omitempty"`
	Footer string   `yaml:"footer,omitempty"`
	Items  []string `yaml:"items"`
}

// Fixture is a tree layout: section identifiers with their item
// identifiers, in order.
type Fixture struct {
	Sections []Section `yaml:"sections"`
}

// Load reads and validates a fixture file. Identifier uniqueness is
// validated here so the differ's fatal duplicate check never fires on
// user input.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	secIDs := make(map[string]struct{}, len(f.Sections))
	itemIDs := make(map[string]struct{})
	for _, sec := range f.Sections {
		if sec.ID == "" {
			return fmt.Errorf("section with empty id")
		}
		if _, dup := secIDs[sec.ID]; dup {
			return fmt.Errorf("duplicate section id %q", sec.ID)
		}
		secIDs[sec.ID] = struct{}{}
		for _, id := range sec.Items {
			if id == "" {
				return fmt.Errorf("section %q: item with empty id", sec.ID)
			}
			if _, dup := itemIDs[id]; dup {
				return fmt.Errorf("duplicate item id %q", id)
			}
			itemIDs[id] = struct{}{}
		}
	}
	return nil
}

// Tree builds a content tree carrying the fixture's identifiers. The
// descriptors have no configuration; only identity matters to the differ.
func (f *Fixture) Tree() *content.Tree {
	sections := make([]*content.Section, len(f.Sections))
	for i, sec := range f.Sections {
		items := make([]*content.Item, len(sec.Items))
		for j, id := range sec.Items {
			items[j] = content.NewItem[content.View](id, nil)
		}
		s := content.NewSection(sec.ID, items...)
		if sec.Header != "" {
			s.Header = content.NewDecoration[content.View](sec.Header, nil)
		}
		if sec.Footer != "" {
			s.Footer = content.NewDecoration[content.View](sec.Footer, nil)
		}
		sections[i] = s
	}
	return content.NewTree(sections...)
}
