package rolltable

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// DefaultWidth is the text table width used by the CLI.
const DefaultWidth = 120

// OverflowKey keys YAML cells that have no header.
const OverflowKey = "_"

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table returns a render-ready terminal table of the rows, width columns
// wide. A non-positive width sizes the table to its content. The header band
// is left out when every header cell is empty, as with hidden rolls and no
// declared headers.
func (t *Table) Table(width int, expanded bool) *table.Table {
	rows := t.Rows()
	if expanded {
		rows = t.ExpandedRows()
	}
	rows = rectangular(rows)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Rows(rows[1:]...)
	if !blank(rows[0]) {
		tbl = tbl.Headers(rows[0]...)
	}
	if width > 0 {
		tbl = tbl.Width(width)
	}
	return tbl
}

// Text renders the table for a terminal.
func (t *Table) Text(width int, expanded bool) string {
	return t.Table(width, expanded).Render()
}

// Markdown renders the collapsed rows as a Markdown table. The header row is
// always written, even when blank, since a Markdown table requires one.
func (t *Table) Markdown() string {
	rows := rectangular(t.Rows())
	return table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		Render()
}

// YAML renders the rows as a mapping of face label to a mapping of header to
// cell. Padded header columns are keyed by the placeholder and their column
// number, ".1", ".2" and so on. Cells past the last header are keyed
// OverflowKey. A repeated key replaces the earlier value in place.
func (t *Table) YAML(expanded bool) (string, error) {
	keys := t.yamlKeys()
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, row := range t.Faces(expanded) {
		cells := &yaml.Node{Kind: yaml.MappingNode}
		for i, cell := range row.Cells {
			key := OverflowKey
			if i < len(keys) {
				key = keys[i]
			}
			setKey(cells, key, cell)
		}
		doc.Content = append(doc.Content, stringNode(row.Label()), cells)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return buf.String(), nil
}

// String renders the collapsed rows as tab-separated, left-aligned columns.
func (t *Table) String() string {
	rows := t.Rows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprintf("%-10s", cell)
		}
		lines[i] = strings.Join(cells, "\t")
	}
	return strings.Join(lines, "\n")
}

func (t *Table) yamlKeys() []string {
	return lo.Map(t.visibleHeaders(), func(h Header, i int) string {
		if h.Padded {
			return fmt.Sprintf("%s%d", Placeholder, i+1)
		}
		return h.Name
	})
}

// setKey sets key to a string value in mapping, replacing an existing key in
// place.
func setKey(mapping *yaml.Node, key, value string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = stringNode(value)
			return
		}
	}
	mapping.Content = append(mapping.Content, stringNode(key), stringNode(value))
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func blank(cells []string) bool {
	return lo.EveryBy(cells, func(c string) bool { return c == "" })
}

// rectangular pads every row to the width of the widest row.
func rectangular(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := append([]string(nil), row...)
		for len(padded) < width {
			padded = append(padded, "")
		}
		out[i] = padded
	}
	return out
}
