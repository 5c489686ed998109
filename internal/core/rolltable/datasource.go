package rolltable

import (
	"errors"
	"fmt"

	apperrors "github.com/louisbranch/rolltable/internal/platform/errors"
	"github.com/louisbranch/rolltable/internal/random"
)

// Entry is one drawn row fragment: the option name followed by the
// flattened parts of one of its values.
type Entry []string

// DataSource draws weighted entries from one parsed document.
type DataSource struct {
	doc     Document
	weights Weights
	width   int
}

// NewDataSource resolves frequency for doc.
func NewDataSource(doc Document, frequency string) (*DataSource, error) {
	weights, err := ResolveFrequency(doc, frequency)
	if err != nil {
		return nil, err
	}

	width := len(doc.Metadata.Headers)
	for _, option := range doc.Options {
		longest := 0
		for _, c := range option.Candidates {
			longest = max(longest, len(c))
		}
		width = max(width, 1+longest)
	}

	return &DataSource{doc: doc, weights: weights, width: width}, nil
}

// Headers returns the declared headers, which may be empty.
func (d *DataSource) Headers() []Header {
	return d.doc.Metadata.Headers
}

// Weights returns the resolved distribution.
func (d *DataSource) Weights() Weights {
	return d.weights
}

// Width is the number of columns the source spans: the larger of its declared
// headers and its longest possible entry.
func (d *DataSource) Width() int {
	return d.width
}

// RandomValues draws count options with replacement and returns one entry
// per draw.
func (d *DataSource) RandomValues(src random.Source, count int) ([]Entry, error) {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		idx, err := src.Choose(d.weights.Values)
		if err != nil {
			if errors.Is(err, random.ErrNoWeight) {
				return nil, apperrors.WrapWithMetadata(apperrors.CodeEmptyDistribution, "no option can be drawn", map[string]string{"frequency": d.weights.Name}, err)
			}
			return nil, fmt.Errorf("draw option: %w", err)
		}
		if idx < 0 || idx >= len(d.doc.Options) {
			return nil, apperrors.WithMetadata(apperrors.CodeUnknownOption, fmt.Sprintf("drew option index %d of %d", idx, len(d.doc.Options)), map[string]string{"frequency": d.weights.Name})
		}
		entries = append(entries, d.entry(src, d.doc.Options[idx]))
	}
	return entries, nil
}

func (d *DataSource) entry(src random.Source, option Option) Entry {
	entry := Entry{option.Name}
	if len(option.Candidates) == 0 {
		return entry
	}
	candidate := option.Candidates[src.Intn(len(option.Candidates))]
	return append(entry, candidate...)
}
