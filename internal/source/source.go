package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Entry is one list item.
type Entry struct {
	Text   string `yaml:"label"`
	Detail string `yaml:"detail,omitempty"`
}

// Label implements pager.Labeler.
func (e *Entry) Label() string {
	if e.Detail == "" {
		return e.Text
	}
	return e.Text + " " + e.Detail
}

// Load reads entries from path, or from stdin when path is Stdin. Files
// ending in .yaml or .yml hold a YAML sequence of strings or of
// {label, detail} mappings; anything else is read one entry per non-blank line.
func Load(path string, stdin io.Reader) ([]*Entry, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read items from %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseLines(data)
	}
}

// ParseLines returns one entry per non-blank line.
func ParseLines(data []byte) ([]*Entry, error) {
	var entries []*Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, &Entry{Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan items: %w", err)
	}
	return entries, nil
}

// ParseYAML decodes a YAML sequence whose elements are either plain strings
// or mappings with a label and an optional detail.
func ParseYAML(data []byte) ([]*Entry, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("decode yaml items: %w", err)
	}
	entries := make([]*Entry, 0, len(nodes))
	for i := range nodes {
		node := &nodes[i]
		switch node.Kind {
		case yaml.ScalarNode:
			entries = append(entries, &Entry{Text: node.Value})
		case yaml.MappingNode:
			var entry Entry
			if err := node.Decode(&entry); err != nil {
				return nil, fmt.Errorf("decode yaml item %d: %w", i, err)
			}
			if entry.Text == "" {
				return nil, fmt.Errorf("yaml item %d (line %d) has no label", i, node.Line)
			}
			entries = append(entries, &entry)
		default:
			return nil, fmt.Errorf("yaml item %d (line %d) must be a string or mapping", i, node.Line)
		}
	}
	return entries, nil
}
