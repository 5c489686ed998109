package tables

import (
	"errors"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/rolltable/internal/core/rolltable"
	"github.com/louisbranch/rolltable/internal/random"
	"github.com/samber/lo"
)

func TestNames(t *testing.T) {
	want := []string{"psychedelic_effects", "spells", "trinkets", "wild_magic"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestEmbeddedTablesRoll(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			src := lo.Must(random.New(42))
			table, err := Default().Table(name, rolltable.WithSource(src))
			if err != nil {
				t.Fatalf("Table(%s): %v", name, err)
			}
			if got := len(table.ExpandedRows()); got != rolltable.DefaultDie+1 {
				t.Fatalf("ExpandedRows() has %d rows, want %d", got, rolltable.DefaultDie+1)
			}
			if len(table.HeaderCells()) == 0 {
				t.Fatal("expected declared headers")
			}
		})
	}
}

func TestEmbeddedFrequencies(t *testing.T) {
	tests := []struct {
		table     string
		frequency string
	}{
		{table: "psychedelic_effects", frequency: "intense"},
		{table: "wild_magic", frequency: "chaotic"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			_, err := Default().Table(tt.table, rolltable.WithFrequency(tt.frequency), rolltable.WithDie(4))
			if err != nil {
				t.Fatalf("Table(%s): %v", tt.table, err)
			}
		})
	}
}

func TestSourceUnknownTable(t *testing.T) {
	if _, err := Source("missing"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("Source() error = %v, want %v", err, ErrUnknownTable)
	}
	if _, err := Default().Table("missing"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("Table() error = %v, want %v", err, ErrUnknownTable)
	}
}

func TestSourceResolvesAlias(t *testing.T) {
	want, err := Source("psychedelic_effects")
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	got, err := Source("psychadelic_effects")
	if err != nil {
		t.Fatalf("Source(alias): %v", err)
	}
	if got != want {
		t.Fatal("alias resolved to a different source")
	}
	for _, name := range Names() {
		if name == "psychadelic_effects" {
			t.Fatal("aliases must not be listed")
		}
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"sources/coins.yaml": {Data: []byte("Coin:\n  - heads\n  - tails\n")},
		"sources/notes.txt":  {Data: []byte("ignored")},
	}
	c, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS: %v", err)
	}
	if got := c.Names(); !reflect.DeepEqual(got, []string{"coins"}) {
		t.Fatalf("Names() = %v", got)
	}

	if _, err := LoadFromFS(fstest.MapFS{}); err == nil {
		t.Fatal("expected error for empty filesystem")
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"wild_magic":          "Wild Magic",
		"psychedelic_effects": "Psychedelic Effects",
		"spells":              "Spells",
	}
	for name, want := range tests {
		if got := Title(name); got != want {
			t.Fatalf("Title(%q) = %q, want %q", name, got, want)
		}
	}
}
