package excel

import (
	"github.com/xuri/excelize/v2"
)

// ExcelizeBackend reads the active sheet with excelize, taking raw values so
// numbers are not passed through their display format.
type ExcelizeBackend struct{}

func (ExcelizeBackend) Load(path string) (sheet *Sheet, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	name := f.GetSheetName(f.GetActiveSheetIndex())
	if name == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrNoSheet
		}
		name = list[0]
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	sheet = &Sheet{Name: name, Rows: make([][]Cell, 0, len(rows))}
	for r, row := range rows {
		cells := make([]Cell, len(row))
		for c, raw := range row {
			if raw == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(name, axis)
			if err != nil {
				return nil, err
			}
			cells[c] = excelizeCell(typ, raw)
		}
		if len(row) > sheet.MaxCol {
			sheet.MaxCol = len(row)
		}
		sheet.Rows = append(sheet.Rows, cells)
	}
	return sheet, nil
}

func excelizeCell(typ excelize.CellType, raw string) Cell {
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return Cell{Kind: CellNumber, Raw: raw}
	case excelize.CellTypeBool:
		return Cell{Kind: CellBool, Raw: raw}
	case excelize.CellTypeDate:
		return Cell{Kind: CellDate, Raw: raw}
	case excelize.CellTypeError:
		return Cell{Kind: CellError, Raw: raw}
	default:
		return Cell{Kind: CellString, Raw: raw}
	}
}
