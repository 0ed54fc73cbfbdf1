package excel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

// employeesRows is a header row, a description row and one data row.
var employeesRows = [][]interface{}{
	{"id", "name", "tags"},
	{"identifier", "display name", "tag ids"},
	{1, "Ana", "[1,2]"},
}

func writeTealegWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sheet1")
	require.NoError(t, err)
	for _, values := range rows {
		row := sheet.AddRow()
		for _, v := range values {
			cell := row.AddCell()
			switch x := v.(type) {
			case nil:
			case string:
				cell.SetString(x)
			case int:
				cell.SetInt(x)
			case float64:
				cell.SetFloat(x)
			case bool:
				cell.SetBool(x)
			default:
				t.Fatalf("unsupported fixture value %T", v)
			}
		}
	}
	require.NoError(t, file.Save(path))
}

func writeExcelizeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, values := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := make([]interface{}, len(values))
		copy(row, values)
		require.NoError(t, f.SetSheetRow("Sheet1", axis, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

// decode turns records into generic JSON values for comparisons.
func decode(t *testing.T, data []byte) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func record(pairs ...interface{}) *Record {
	r := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

func sheetOf(rows ...[]Cell) *Sheet {
	return &Sheet{Name: "Sheet1", Rows: rows}
}

func str(s string) Cell {
	return Cell{Kind: CellString, Raw: s}
}

func num(s string) Cell {
	return Cell{Kind: CellNumber, Raw: s}
}
