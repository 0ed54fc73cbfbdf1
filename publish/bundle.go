// Package publish ships the generated table JSON to the game servers: as a
// merged bundle file, as one Redis key, or as one MongoDB document per table.
package publish

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mafei198/sheetgen/misc"
	"github.com/tidwall/pretty"
)

// CollectTables reads every .json file directly inside jsonDir and returns
// its compacted content keyed by table name.
func CollectTables(jsonDir string) (map[string][]byte, error) {
	files, err := misc.ListFiles(jsonDir, ".json")
	if err != nil {
		return nil, err
	}
	tables := map[string][]byte{}
	for _, file := range files {
		data, err := os.ReadFile(filepath.Join(jsonDir, file))
		if err != nil {
			return nil, err
		}
		tables[strings.TrimSuffix(file, ".json")] = pretty.Ugly(data)
	}
	return tables, nil
}

// MergeJSON encodes tables as one object mapping each table name to its JSON
// text, gzipped when isGzip is set.
func MergeJSON(tables map[string][]byte, isGzip bool) ([]byte, error) {
	datas := make(map[string]string, len(tables))
	for name, content := range tables {
		datas[name] = string(content)
	}
	data, err := json.Marshal(datas)
	if err != nil {
		return nil, err
	}
	if isGzip {
		return misc.Gzip(data)
	}
	return data, nil
}

// CreateMergeJSON writes the merged bundle of jsonDir to writePath.
func CreateMergeJSON(jsonDir, writePath string, isGzip bool) (int, error) {
	tables, err := CollectTables(jsonDir)
	if err != nil {
		return 0, err
	}
	data, err := MergeJSON(tables, isGzip)
	if err != nil {
		return 0, err
	}
	return len(tables), misc.WriteFile(writePath, data)
}
