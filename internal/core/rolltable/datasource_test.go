package rolltable

import (
	"errors"
	"reflect"
	"testing"

	"github.com/louisbranch/rolltable/internal/random"
	"github.com/louisbranch/rolltable/internal/testkit/randomfakes"
)

func TestRandomValuesOneOption(t *testing.T) {
	ds, err := NewDataSource(mustParse(t, fixtureOneChoice), DefaultFrequency)
	if err != nil {
		t.Fatalf("NewDataSource: %v", err)
	}

	entries, err := ds.RandomValues(&randomfakes.Sequence{}, 1)
	if err != nil {
		t.Fatalf("RandomValues: %v", err)
	}
	want := []Entry{{"option 1", "choice 1", "description 1"}}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
}

func TestRandomValuesEntryShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		src  *randomfakes.Sequence
		want Entry
	}{
		{
			name: "empty option yields its name",
			text: fixtureNoOptions,
			src:  &randomfakes.Sequence{Choices: []int{1}},
			want: Entry{"B2"},
		},
		{
			name: "mapping picks one pair",
			text: fixtureMapping,
			src:  &randomfakes.Sequence{Ints: []int{1}},
			want: Entry{"Weapon", "bow", "ranged", "quiet"},
		},
		{
			name: "scalar list",
			text: fixtureCombinedA,
			src:  &randomfakes.Sequence{Choices: []int{2}, Ints: []int{1}},
			want: Entry{"A3", "A choice 8"},
		},
		{
			name: "keyed list value",
			text: fixtureLists,
			src:  &randomfakes.Sequence{},
			want: Entry{"foo", "bar", "baz", "quz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDataSource(mustParse(t, tt.text), DefaultFrequency)
			if err != nil {
				t.Fatalf("NewDataSource: %v", err)
			}
			entries, err := ds.RandomValues(tt.src, 1)
			if err != nil {
				t.Fatalf("RandomValues: %v", err)
			}
			if !reflect.DeepEqual(entries[0], tt.want) {
				t.Fatalf("entry = %v, want %v", entries[0], tt.want)
			}
		})
	}
}

func TestRandomValuesZeroWeightNeverDrawn(t *testing.T) {
	ds, err := NewDataSource(mustParse(t, fixtureWeighted), DefaultFrequency)
	if err != nil {
		t.Fatalf("NewDataSource: %v", err)
	}
	src, err := random.New(2024)
	if err != nil {
		t.Fatalf("random.New: %v", err)
	}

	entries, err := ds.RandomValues(src, 100)
	if err != nil {
		t.Fatalf("RandomValues: %v", err)
	}
	for i, e := range entries {
		if e[0] != "B" {
			t.Fatalf("draw %d picked %q", i, e[0])
		}
	}
}

func TestRandomValuesEmptyDistribution(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		frequency string
	}{
		{name: "no options", text: "metadata:\n  headers: [A]\n", frequency: DefaultFrequency},
		{name: "all zero", text: "metadata:\n  frequencies:\n    none:\n      A: 0\nA:\n  - x\n", frequency: "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDataSource(mustParse(t, tt.text), tt.frequency)
			if err != nil {
				t.Fatalf("NewDataSource: %v", err)
			}
			_, err = ds.RandomValues(&randomfakes.Sequence{}, 1)
			if !errors.Is(err, ErrEmptyDistribution) {
				t.Fatalf("RandomValues() error = %v, want ErrEmptyDistribution", err)
			}
		})
	}
}

func TestDataSourceWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "headers wider than entries", text: fixtureNoOptions, want: 2},
		{name: "entries wider than headers", text: "metadata:\n  headers: [Opt, Choice]\nOption1:\n  - choice1: desc1\n", want: 3},
		{name: "no headers", text: fixtureCombinedA, want: 2},
		{name: "longest candidate", text: fixtureMapping, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDataSource(mustParse(t, tt.text), DefaultFrequency)
			if err != nil {
				t.Fatalf("NewDataSource: %v", err)
			}
			if ds.Width() != tt.want {
				t.Fatalf("Width() = %d, want %d", ds.Width(), tt.want)
			}
		})
	}
}
