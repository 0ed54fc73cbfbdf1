package excel

import (
	"fmt"

	"github.com/mafei198/sheetgen/literal"
	"github.com/mafei198/sheetgen/misc"
)

const (
	RowHeader = iota
	RowComment
	RowFirstData
)

// Backend loads the worksheet a table is read from and releases the
// workbook before returning.
type Backend interface {
	Load(path string) (*Sheet, error)
}

type Reader struct {
	backend Backend
}

func NewReader(backend Backend) *Reader {
	return &Reader{backend: backend}
}

// NewReaderByName picks a backend by its configuration name.
func NewReaderByName(name string) (*Reader, error) {
	switch name {
	case "", "tealeg":
		return NewReader(TealegBackend{}), nil
	case "excelize":
		return NewReader(ExcelizeBackend{}), nil
	default:
		return nil, fmt.Errorf("unknown reader backend %q", name)
	}
}

// Read returns the non-blank data records of the workbook at path. Any
// failure, including a panic inside the backend, is a *SourceReadError.
func (r *Reader) Read(path string) (records []*Record, err error) {
	defer func() {
		if err != nil {
			records = nil
			err = &SourceReadError{Path: path, Err: err}
		}
	}()
	defer misc.RecoverPanic("read "+path, &err)

	sheet, err := r.backend.Load(path)
	if err != nil {
		return nil, err
	}
	return BuildRecords(sheet), nil
}

// BuildRecords takes column names from the header row and builds one record
// per data row. Empty cells are left out and blank records are dropped.
func BuildRecords(sheet *Sheet) []*Record {
	maxCol := sheet.maxCol()
	headers := make([]string, maxCol)
	for col := 0; col < maxCol; col++ {
		headers[col] = sheet.Cell(RowHeader, col).Raw
	}

	records := make([]*Record, 0)
	for row := RowFirstData; row < len(sheet.Rows); row++ {
		record := NewRecord()
		for col := 0; col < maxCol; col++ {
			cell := sheet.Cell(row, col)
			if cell.IsEmpty() {
				continue
			}
			record.Set(headers[col], literal.Normalize(cell.Value()).Value)
		}
		if !record.IsBlank() {
			records = append(records, record)
		}
	}
	return records
}
