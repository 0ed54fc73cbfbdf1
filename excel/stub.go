package excel

import (
	"path/filepath"

	"github.com/mafei198/sheetgen/excel/tpls"
	"github.com/mafei198/sheetgen/misc"
)

const (
	ExtendSuffix = "Extend"
	ScriptExt    = ".ts"
)

func ExtendClassName(tableName string) string {
	return tableName + ExtendSuffix
}

func StubPath(outputDir, tableName string) string {
	return filepath.Join(outputDir, ExtendClassName(tableName)+ScriptExt)
}

// EmitSchemaStub writes the extension scaffold for a table unless one is
// already on disk. An existing stub is never rewritten, even when the header
// has changed since: it is meant to be edited by hand. The column enum is
// taken from sample's keys and is empty when sample is nil.
func EmitSchemaStub(tableName, outputDir string, sample *Record) (path string, created bool, err error) {
	path = StubPath(outputDir, tableName)
	if misc.FileExists(path) {
		return path, false, nil
	}
	var columns []string
	if sample != nil {
		columns = sample.Keys()
	}
	content := tpls.GenExtendFile(ExtendClassName(tableName), columns)
	if err := misc.WriteFile(path, []byte(content)); err != nil {
		return path, false, err
	}
	return path, true, nil
}
