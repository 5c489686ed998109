// Package tables provides the roll table sources bundled with the binary.
package tables

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/louisbranch/rolltable/internal/core/rolltable"
	apperrors "github.com/louisbranch/rolltable/internal/platform/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed sources/*.yaml
var embeddedSources embed.FS

// ErrUnknownTable indicates a table name with no bundled source.
var ErrUnknownTable = apperrors.New(apperrors.CodeUnknownTable, "unknown table")

var defaultCatalog = mustLoadEmbedded()

// aliases maps earlier table names to their current name.
var aliases = map[string]string{
	"psychadelic_effects": "psychedelic_effects",
}

// Catalog indexes table sources by name.
type Catalog struct {
	sources map[string]string
}

// Default returns the catalog of embedded sources.
func Default() *Catalog {
	return defaultCatalog
}

// LoadFromFS loads every sources/*.yaml file in fsys. Each table is named
// after its file, without the extension.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "sources/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob table sources: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no table sources found")
	}

	c := &Catalog{sources: make(map[string]string, len(paths))}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read table source %s: %w", p, err)
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		c.sources[name] = string(data)
	}
	return c, nil
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadFromFS(embeddedSources)
	if err != nil {
		panic(fmt.Sprintf("load embedded tables: %v", err))
	}
	return c
}

// Names returns the table names in sorted order. Aliases are not listed.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the YAML source of the named table. Aliases resolve to the
// table they name.
func (c *Catalog) Source(name string) (string, error) {
	src, ok := c.sources[name]
	if !ok {
		if current, aliased := aliases[name]; aliased {
			src, ok = c.sources[current]
		}
	}
	if !ok {
		return "", apperrors.WithMetadata(apperrors.CodeUnknownTable, fmt.Sprintf("unknown table %q", name), map[string]string{"table": name})
	}
	return src, nil
}

// Table parses the named source and rolls it.
func (c *Catalog) Table(name string, opts ...rolltable.TableOption) (*rolltable.Table, error) {
	src, err := c.Source(name)
	if err != nil {
		return nil, err
	}
	t, err := rolltable.New([]string{src}, opts...)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", name, err)
	}
	return t, nil
}

// Title turns a snake_case table name into a display title.
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// Names returns the embedded table names.
func Names() []string {
	return defaultCatalog.Names()
}

// Source returns the embedded source of the named table.
func Source(name string) (string, error) {
	return defaultCatalog.Source(name)
}
