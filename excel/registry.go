package excel

import (
	"fmt"
	"path/filepath"

	"github.com/mafei198/sheetgen/excel/tpls"
	"github.com/mafei198/sheetgen/misc"
)

const TableSettingFile = "TableSetting" + ScriptExt

// Registry collects the table names of one batch run and writes the Tables
// enum once the last expected table is recorded. It is not safe for
// concurrent use.
type Registry struct {
	path   string
	names  []string
	filled []bool
}

// NewRegistry expects total tables and writes into dir/TableSetting.ts.
func NewRegistry(dir string, total int) *Registry {
	if total < 0 {
		total = 0
	}
	return &Registry{
		path:   filepath.Join(dir, TableSettingFile),
		names:  make([]string, total),
		filled: make([]bool, total),
	}
}

func (r *Registry) Path() string {
	return r.path
}

func (r *Registry) Total() int {
	return len(r.names)
}

// Names returns the recorded names in position order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for i, name := range r.names {
		if r.filled[i] {
			names = append(names, name)
		}
	}
	return names
}

// Record stores name at the 1-based position. Recording the last position
// writes the registry file and reports flushed. Nothing touches the disk
// before that. A name already held by another position is not stored and
// yields ErrRegistryDuplicate; on the last position the file is written
// anyway and both flushed and the error are returned.
func (r *Registry) Record(name string, position int) (flushed bool, err error) {
	if position < 1 || position > len(r.names) {
		return false, fmt.Errorf("%w: %d of %d", ErrRegistryPosition, position, len(r.names))
	}
	var dupErr error
	for i, existing := range r.names {
		if r.filled[i] && existing == name && i != position-1 {
			dupErr = fmt.Errorf("%w: %s", ErrRegistryDuplicate, name)
			break
		}
	}
	if dupErr == nil {
		r.names[position-1] = name
		r.filled[position-1] = true
	}
	if position < len(r.names) {
		return false, dupErr
	}
	if err := misc.WriteFile(r.path, []byte(tpls.GenTablesFile(r.Names()))); err != nil {
		return false, err
	}
	return true, dupErr
}
