package rolltable

import (
	"fmt"

	"github.com/louisbranch/rolltable/internal/random"
	"github.com/samber/lo"
)

const (
	// DefaultDie is the number of faces rolled when no die is configured.
	DefaultDie = 20

	// RollHeader labels the leading face column.
	RollHeader = "Roll"

	// Placeholder fills header slots of sources that declare fewer headers
	// than the columns they span.
	Placeholder = "."
)

// TableOption configures a Table.
type TableOption func(*settings)

type settings struct {
	frequency string
	die       int
	hideRolls bool
	source    random.Source
}

// WithFrequency selects the named distribution in every source.
func WithFrequency(name string) TableOption {
	return func(s *settings) {
		s.frequency = name
	}
}

// WithDie sets the number of faces to roll.
func WithDie(die int) TableOption {
	return func(s *settings) {
		s.die = die
	}
}

// WithHideRolls drops the Roll column from every rendered row.
func WithHideRolls(hide bool) TableOption {
	return func(s *settings) {
		s.hideRolls = hide
	}
}

// WithSource sets the random source used to roll. Without it the table uses
// a crypto-seeded random.Rand.
func WithSource(src random.Source) TableOption {
	return func(s *settings) {
		s.source = src
	}
}

// Table is a rolled table over one or more data sources.
//
// A Table is not safe for concurrent use.
type Table struct {
	settings

	sources []*DataSource
	headers []Header
	// pad is the width each source's entry is padded to before the next
	// source's entry is appended; zero leaves the entry as drawn.
	pad []int
	// excluded marks data columns (after Roll) hidden by a nil header.
	excluded []bool
	values   []Entry
}

// New parses sources and rolls a table over them. It fails on the first
// source that cannot be parsed or resolved.
func New(sources []string, opts ...TableOption) (*Table, error) {
	docs := make([]Document, 0, len(sources))
	for i, text := range sources {
		doc, err := ParseSource(text)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i+1, err)
		}
		docs = append(docs, doc)
	}
	return FromDocuments(docs, opts...)
}

// FromDocuments rolls a table over already parsed documents.
func FromDocuments(docs []Document, opts ...TableOption) (*Table, error) {
	s := settings{frequency: DefaultFrequency, die: DefaultDie}
	for _, opt := range opts {
		opt(&s)
	}
	if s.die < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDie, s.die)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: at least one source is required", ErrMalformedSource)
	}
	if s.source == nil {
		src, err := random.New(0)
		if err != nil {
			return nil, err
		}
		s.source = src
	}

	t := &Table{settings: s}
	for i, doc := range docs {
		ds, err := NewDataSource(doc, s.frequency)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i+1, err)
		}
		t.sources = append(t.sources, ds)
	}
	t.assemble()

	values, err := t.roll()
	if err != nil {
		return nil, err
	}
	t.values = values
	return t, nil
}

// assemble merges headers across sources and records excluded columns.
//
// Sources before the last one declaring headers are padded to their width so
// the columns of later sources stay aligned; the last declaring source keeps
// its headers as declared and sources after it contribute none.
func (t *Table) assemble() {
	last := -1
	for i, ds := range t.sources {
		if len(ds.Headers()) > 0 {
			last = i
		}
	}

	t.pad = make([]int, len(t.sources))
	for i, ds := range t.sources {
		switch {
		case i < last:
			headers := append([]Header(nil), ds.Headers()...)
			for len(headers) < ds.Width() {
				headers = append(headers, Header{Name: Placeholder, Padded: true})
			}
			t.headers = append(t.headers, headers...)
			t.pad[i] = ds.Width()
		case i == last:
			t.headers = append(t.headers, ds.Headers()...)
		}
	}

	t.excluded = lo.Map(t.headers, func(h Header, _ int) bool {
		return h.Excluded
	})
}

// roll draws die entries from every source and joins them face by face.
func (t *Table) roll() ([]Entry, error) {
	drawn := make([][]Entry, len(t.sources))
	for i, ds := range t.sources {
		entries, err := ds.RandomValues(t.source, t.die)
		if err != nil {
			return nil, fmt.Errorf("source %d: %w", i+1, err)
		}
		drawn[i] = entries
	}

	values := make([]Entry, t.die)
	for face := 0; face < t.die; face++ {
		var row Entry
		for i := range t.sources {
			entry := drawn[i][face]
			row = append(row, entry...)
			for k := len(entry); k < t.pad[i]; k++ {
				row = append(row, "")
			}
		}
		values[face] = row
	}
	return values, nil
}

// Resample rolls the table again. On error the previous roll is kept.
func (t *Table) Resample() error {
	values, err := t.roll()
	if err != nil {
		return err
	}
	t.values = values
	return nil
}

// Die returns the number of faces rolled.
func (t *Table) Die() int {
	return t.die
}

// Frequency returns the distribution name the table was rolled with.
func (t *Table) Frequency() string {
	return t.frequency
}

// HideRolls reports whether the Roll column is dropped from rendered rows.
func (t *Table) HideRolls() bool {
	return t.hideRolls
}

// DataSources returns the table's sources in order.
func (t *Table) DataSources() []*DataSource {
	return t.sources
}

// Headers returns the merged headers, including excluded ones and padding
// placeholders, without the leading Roll header.
func (t *Table) Headers() []Header {
	return append([]Header(nil), t.headers...)
}

// Values returns the rolled entries, one per face, before column filtering.
func (t *Table) Values() [][]string {
	return lo.Map(t.values, func(e Entry, _ int) []string {
		return append([]string(nil), e...)
	})
}
