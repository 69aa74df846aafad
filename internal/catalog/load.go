package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"quizbank/internal/question"
)

const mergeTag = "!!merge"

var recordKeys = map[string]struct{}{
	"title":  {},
	"prompt": {},
	"hints":  {},
	"tags":   {},
}

// Load reads the catalog at path. A missing or empty file is an empty catalog.
func Load(path string) ([]question.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []question.Record{}, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	records, err := decode(path, data)
	if err != nil {
		return nil, err
	}
	if err := question.Validate(records); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return records, nil
}

func decode(path string, data []byte) ([]question.Record, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []question.Record{}, nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := decoder.Decode(&yaml.Node{}); err != io.EOF {
		if err == nil {
			return nil, &ParseError{Path: path, Err: errors.New("multiple YAML documents are not supported")}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []question.Record{}, nil
		}
		root = root.Content[0]
	}
	root = resolveAlias(root)
	switch {
	case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
		return []question.Record{}, nil
	case root.Kind != yaml.SequenceNode:
		return nil, &ShapeError{Path: path, Index: -1, Reason: fmt.Sprintf("expected a sequence of questions, got %s", kindName(root))}
	}

	records := make([]question.Record, 0, len(root.Content))
	for i, item := range root.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, &ShapeError{Path: path, Index: i, Reason: fmt.Sprintf("expected a mapping, got %s", kindName(item))}
		}
		if key, ok := unknownKey(item); ok {
			return nil, &ShapeError{Path: path, Index: i, Reason: fmt.Sprintf("unknown field %q", key)}
		}
		var record question.Record
		if err := item.Decode(&record); err != nil {
			return nil, &ShapeError{Path: path, Index: i, Reason: err.Error()}
		}
		records = append(records, record)
	}
	return records, nil
}

// unknownKey returns the first key of mapping that is not a record field.
// Merge keys (<<) are followed into the mappings they pull in.
func unknownKey(mapping *yaml.Node) (string, bool) {
	for k := 0; k+1 < len(mapping.Content); k += 2 {
		key, value := mapping.Content[k], mapping.Content[k+1]
		if key.Kind == yaml.ScalarNode && key.ShortTag() == mergeTag {
			for _, source := range mergeSources(value) {
				if name, ok := unknownKey(source); ok {
					return name, true
				}
			}
			continue
		}
		if _, ok := recordKeys[key.Value]; !ok {
			return key.Value, true
		}
	}
	return "", false
}

func mergeSources(value *yaml.Node) []*yaml.Node {
	value = resolveAlias(value)
	switch value.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{value}
	case yaml.SequenceNode:
		sources := make([]*yaml.Node, 0, len(value.Content))
		for _, item := range value.Content {
			if item = resolveAlias(item); item.Kind == yaml.MappingNode {
				sources = append(sources, item)
			}
		}
		return sources
	default:
		return nil
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "null"
		}
		return fmt.Sprintf("a scalar %q", node.Value)
	default:
		return "an unsupported node"
	}
}
