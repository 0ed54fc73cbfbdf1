package excel

import (
	"github.com/tealeg/xlsx"
)

// TealegBackend reads workbooks with tealeg/xlsx. The selected sheet is used
// when the workbook marks one, the first sheet otherwise.
type TealegBackend struct{}

func (TealegBackend) Load(path string) (*Sheet, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if len(file.Sheets) == 0 {
		return nil, ErrNoSheet
	}
	sheet := file.Sheets[0]
	for _, s := range file.Sheets {
		if s.Selected {
			sheet = s
			break
		}
	}

	out := &Sheet{
		Name:   sheet.Name,
		MaxCol: sheet.MaxCol,
		Rows:   make([][]Cell, 0, len(sheet.Rows)),
	}
	for _, row := range sheet.Rows {
		cells := make([]Cell, 0)
		if row != nil {
			for _, cell := range row.Cells {
				cells = append(cells, tealegCell(cell))
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

func tealegCell(cell *xlsx.Cell) Cell {
	if cell == nil || cell.Value == "" {
		return Cell{}
	}
	switch cell.Type() {
	case xlsx.CellTypeNumeric:
		return Cell{Kind: CellNumber, Raw: cell.Value}
	case xlsx.CellTypeBool:
		return Cell{Kind: CellBool, Raw: cell.Value}
	case xlsx.CellTypeDate:
		return Cell{Kind: CellDate, Raw: cell.Value}
	case xlsx.CellTypeError:
		return Cell{Kind: CellError, Raw: cell.Value}
	default:
		return Cell{Kind: CellString, Raw: cell.Value}
	}
}
