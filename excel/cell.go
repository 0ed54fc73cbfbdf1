package excel

import (
	"strconv"
	"strings"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellBool
	CellDate
	CellError
)

// Cell is a backend independent view of one worksheet cell.
type Cell struct {
	Kind CellKind
	Raw  string
}

func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || c.Raw == ""
}

// Value coerces the cell: numbers become int64 when integral and float64
// otherwise, booleans become bool, everything else stays text.
func (c Cell) Value() interface{} {
	if c.IsEmpty() {
		return nil
	}
	switch c.Kind {
	case CellNumber:
		return parseNumber(c.Raw)
	case CellBool:
		return parseBool(c.Raw)
	default:
		return c.Raw
	}
}

func parseNumber(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func parseBool(s string) interface{} {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return s
}

// Sheet is the cell grid of one worksheet. Rows may be shorter than MaxCol.
type Sheet struct {
	Name   string
	MaxCol int
	Rows   [][]Cell
}

func (s *Sheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(s.Rows) {
		return Cell{}
	}
	cells := s.Rows[row]
	if col < 0 || col >= len(cells) {
		return Cell{}
	}
	return cells[col]
}

func (s *Sheet) maxCol() int {
	maxCol := s.MaxCol
	for _, row := range s.Rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	return maxCol
}
