package rolltable

import (
	"fmt"
	"math"

	apperrors "github.com/louisbranch/rolltable/internal/platform/errors"
	"gopkg.in/yaml.v3"
)

const metadataKey = "metadata"

// PayloadKind classifies the shape of an option's values.
type PayloadKind int

const (
	// PayloadEmpty is an option with no values; drawing it yields only its name.
	PayloadEmpty PayloadKind = iota
	// PayloadScalars is a sequence of scalars or nested lists.
	PayloadScalars
	// PayloadKeyed is a sequence of single-key mappings.
	PayloadKeyed
	// PayloadMapping is a mapping of keys to scalars or lists.
	PayloadMapping
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadEmpty:
		return "empty"
	case PayloadScalars:
		return "scalars"
	case PayloadKeyed:
		return "keyed"
	case PayloadMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Header is one column label. Excluded headers hide their column from
// rendered output while still occupying a data slot. Padded headers were
// filled in by the table to align a source's columns and were never declared.
type Header struct {
	Name     string
	Excluded bool
	Padded   bool
}

// Weight is the selection weight of one option within a distribution.
type Weight struct {
	Option string
	Value  float64
}

// Distribution is a named frequency table, in document order.
type Distribution struct {
	Name    string
	Weights []Weight
}

// Metadata is the optional metadata block of a source document.
type Metadata struct {
	Headers     []Header
	Frequencies []Distribution
}

// Distribution returns the named distribution, if declared.
func (m Metadata) Distribution(name string) (Distribution, bool) {
	for _, d := range m.Frequencies {
		if d.Name == name {
			return d, true
		}
	}
	return Distribution{}, false
}

// Option is one named category of a source document.
//
// Candidates holds the flattened value parts each value contributes after
// the option name; it is empty for PayloadEmpty.
type Option struct {
	Name       string
	Kind       PayloadKind
	Candidates [][]string
}

// Document is a parsed source document.
type Document struct {
	Options  []Option
	Metadata Metadata
}

// OptionNames returns option names in document order.
func (d Document) OptionNames() []string {
	names := make([]string, len(d.Options))
	for i, o := range d.Options {
		names[i] = o.Name
	}
	return names
}

// ParseSource parses one YAML source document.
func ParseSource(text string) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return Document{}, apperrors.Wrap(apperrors.CodeMalformedSource, "decode yaml", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Document{}, malformed("document is empty", nil)
	}
	body := resolve(root.Content[0])
	if body.Kind != yaml.MappingNode {
		return Document{}, malformed("document must be a mapping", nil)
	}

	var doc Document
	seen := make(map[string]bool)
	var metadata *yaml.Node
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, value := resolve(body.Content[i]), resolve(body.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return Document{}, malformed("option names must be scalars", nil)
		}
		name := key.Value
		if name == metadataKey {
			metadata = value
			continue
		}
		if seen[name] {
			return Document{}, malformed("duplicate option", map[string]string{"option": name})
		}
		seen[name] = true

		option, err := parseOption(name, value)
		if err != nil {
			return Document{}, err
		}
		doc.Options = append(doc.Options, option)
	}

	if metadata != nil {
		meta, err := parseMetadata(metadata)
		if err != nil {
			return Document{}, err
		}
		doc.Metadata = meta
	}
	return doc, nil
}

func parseOption(name string, value *yaml.Node) (Option, error) {
	option := Option{Name: name}
	switch value.Kind {
	case yaml.ScalarNode:
		if isNull(value) {
			return option, nil
		}
		option.Kind = PayloadScalars
		option.Candidates = [][]string{{scalarText(value)}}
	case yaml.SequenceNode:
		if len(value.Content) == 0 {
			return option, nil
		}
		keyed := 0
		for _, item := range value.Content {
			if resolve(item).Kind == yaml.MappingNode {
				keyed++
			}
		}
		switch keyed {
		case 0:
			option.Kind = PayloadScalars
			for _, item := range value.Content {
				option.Candidates = append(option.Candidates, flatten(item))
			}
		case len(value.Content):
			option.Kind = PayloadKeyed
			for _, item := range value.Content {
				item = resolve(item)
				if len(item.Content) != 2 {
					return Option{}, malformed("sequence mappings must have exactly one key", map[string]string{"option": name})
				}
				option.Candidates = append(option.Candidates, pair(item.Content[0], item.Content[1]))
			}
		default:
			return Option{}, malformed("option mixes mappings and values", map[string]string{"option": name})
		}
	case yaml.MappingNode:
		if len(value.Content) == 0 {
			return option, nil
		}
		option.Kind = PayloadMapping
		for i := 0; i+1 < len(value.Content); i += 2 {
			option.Candidates = append(option.Candidates, pair(value.Content[i], value.Content[i+1]))
		}
	default:
		return Option{}, malformed("unsupported option payload", map[string]string{"option": name})
	}
	return option, nil
}

func parseMetadata(node *yaml.Node) (Metadata, error) {
	if isNull(node) {
		return Metadata{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return Metadata{}, malformed("metadata must be a mapping", nil)
	}

	var meta Metadata
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := resolve(node.Content[i]), resolve(node.Content[i+1])
		switch key.Value {
		case "headers":
			headers, err := parseHeaders(value)
			if err != nil {
				return Metadata{}, err
			}
			meta.Headers = headers
		case "frequencies":
			frequencies, err := parseFrequencies(value)
			if err != nil {
				return Metadata{}, err
			}
			meta.Frequencies = frequencies
		}
	}
	return meta, nil
}

func parseHeaders(node *yaml.Node) ([]Header, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, malformed("metadata headers must be a sequence", nil)
	}
	headers := make([]Header, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode {
			return nil, malformed("metadata headers must be scalars", nil)
		}
		if isNull(item) {
			headers = append(headers, Header{Excluded: true})
			continue
		}
		headers = append(headers, Header{Name: item.Value})
	}
	return headers, nil
}

func parseFrequencies(node *yaml.Node) ([]Distribution, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, malformed("metadata frequencies must be a mapping", nil)
	}
	distributions := make([]Distribution, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := resolve(node.Content[i]).Value
		table := resolve(node.Content[i+1])
		meta := map[string]string{"frequency": name}
		if isNull(table) {
			distributions = append(distributions, Distribution{Name: name})
			continue
		}
		if table.Kind != yaml.MappingNode {
			return nil, malformed("frequency must be a mapping of option to weight", meta)
		}
		dist := Distribution{Name: name}
		seen := make(map[string]bool)
		for j := 0; j+1 < len(table.Content); j += 2 {
			option := resolve(table.Content[j]).Value
			weightNode := resolve(table.Content[j+1])
			var weight float64
			if weightNode.Kind != yaml.ScalarNode || isNull(weightNode) || weightNode.Decode(&weight) != nil {
				return nil, malformed("frequency weight must be a number", map[string]string{"frequency": name, "option": option})
			}
			if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
				return nil, malformed(fmt.Sprintf("frequency weight %v must be finite and non-negative", weight), map[string]string{"frequency": name, "option": option})
			}
			if seen[option] {
				return nil, malformed("duplicate frequency option", map[string]string{"frequency": name, "option": option})
			}
			seen[option] = true
			dist.Weights = append(dist.Weights, Weight{Option: option, Value: weight})
		}
		distributions = append(distributions, dist)
	}
	return distributions, nil
}

// pair flattens one key/value candidate into [key, ...value].
func pair(key, value *yaml.Node) []string {
	return append([]string{scalarText(resolve(key))}, flatten(value)...)
}

// flatten expands a node depth-first into scalar text. Mappings contribute
// each key followed by its flattened value.
func flatten(node *yaml.Node) []string {
	node = resolve(node)
	switch node.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, item := range node.Content {
			out = append(out, flatten(item)...)
		}
		return out
	case yaml.MappingNode:
		var out []string
		for i := 0; i+1 < len(node.Content); i += 2 {
			out = append(out, pair(node.Content[i], node.Content[i+1])...)
		}
		return out
	default:
		return []string{scalarText(node)}
	}
}

func scalarText(node *yaml.Node) string {
	if isNull(node) {
		return ""
	}
	return node.Value
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
