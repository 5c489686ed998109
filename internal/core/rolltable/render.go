package rolltable

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Row is one rendered table row covering faces Start through End.
//
// Cells holds the data columns with excluded columns removed and padding
// applied; it never includes the face label.
type Row struct {
	Start int
	End   int
	Cells []string
}

// Label returns "d{Start}" for a single face or "d{Start}-d{End}" for a range.
func (r Row) Label() string {
	if r.Start == r.End {
		return fmt.Sprintf("d%d", r.Start)
	}
	return fmt.Sprintf("d%d-d%d", r.Start, r.End)
}

// Covers reports whether face falls within the row.
func (r Row) Covers(face int) bool {
	return face >= r.Start && face <= r.End
}

// HeaderCells returns the visible header labels, without the Roll header.
func (t *Table) HeaderCells() []string {
	return lo.Map(t.visibleHeaders(), func(h Header, _ int) string {
		return h.Name
	})
}

func (t *Table) visibleHeaders() []Header {
	return lo.Reject(t.headers, func(h Header, _ int) bool {
		return h.Excluded
	})
}

// Faces returns the structured rows of the table. When expanded is false,
// maximal runs of consecutive faces with identical entries collapse into one
// row.
func (t *Table) Faces(expanded bool) []Row {
	if expanded {
		rows := make([]Row, len(t.values))
		for i, value := range t.values {
			rows[i] = Row{Start: i + 1, End: i + 1, Cells: t.cells(value)}
		}
		return rows
	}

	var rows []Row
	start := 0
	for face := 1; face <= len(t.values); face++ {
		if face < len(t.values) && slices.Equal(t.values[face], t.values[start]) {
			continue
		}
		rows = append(rows, Row{Start: start + 1, End: face, Cells: t.cells(t.values[start])})
		start = face
	}
	return rows
}

// Lookup returns the collapsed row covering face.
func (t *Table) Lookup(face int) (Row, bool) {
	for _, row := range t.Faces(false) {
		if row.Covers(face) {
			return row, true
		}
	}
	return Row{}, false
}

// Rows returns the header row followed by one row per run of identical
// faces.
func (t *Table) Rows() [][]string {
	return t.matrix(t.Faces(false))
}

// ExpandedRows returns the header row followed by one row per face.
func (t *Table) ExpandedRows() [][]string {
	return t.matrix(t.Faces(true))
}

func (t *Table) matrix(rows []Row) [][]string {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, t.withLabel(RollHeader, t.HeaderCells()))
	for _, row := range rows {
		out = append(out, t.withLabel(row.Label(), row.Cells))
	}
	return out
}

func (t *Table) withLabel(label string, cells []string) []string {
	if t.hideRolls {
		return append([]string(nil), cells...)
	}
	return append([]string{label}, cells...)
}

// cells pads value to the header count and strips excluded columns.
func (t *Table) cells(value Entry) []string {
	padded := append([]string(nil), value...)
	for len(padded) < len(t.headers) {
		padded = append(padded, "")
	}
	out := make([]string, 0, len(padded))
	for i, cell := range padded {
		if i < len(t.excluded) && t.excluded[i] {
			continue
		}
		out = append(out, cell)
	}
	return out
}
