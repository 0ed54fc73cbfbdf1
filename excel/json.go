package excel

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/mafei198/sheetgen/literal"
	"github.com/mafei198/sheetgen/misc"
	"github.com/tidwall/pretty"
)

type JSONOptions struct {
	// LegacyFixup rewrites the serialized text with plain string
	// replacements instead of unwrapping list strings value by value. It
	// also rewrites strings that merely contain brackets or quotes.
	LegacyFixup bool
}

var prettyOptions = &pretty.Options{
	Width:    0, // one array element per line
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// WriteJSON writes records to <outputDir>/<tableName>.json and returns the
// path. Nothing is written for an empty table and the returned path is "".
func WriteJSON(records []*Record, outputDir, tableName string, opts JSONOptions) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	data, err := MarshalRecords(records, opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outputDir, tableName+".json")
	if err := misc.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// MarshalRecords renders records as an indented JSON array.
func MarshalRecords(records []*Record, opts JSONOptions) ([]byte, error) {
	if !opts.LegacyFixup {
		records = unwrapListStrings(records)
	}
	buf := &bytes.Buffer{}
	if err := encodeJSON(buf, records); err != nil {
		return nil, err
	}
	data := pretty.PrettyOptions(buf.Bytes(), prettyOptions)
	// pretty ends every non-final array element line with ", "
	data = bytes.ReplaceAll(data, []byte(" \n"), []byte("\n"))
	if opts.LegacyFixup {
		data = []byte(legacyFixup(string(data)))
	}
	return data, nil
}

// unwrapListStrings replaces string values holding a list literal, such as
// "['a','b']", with the parsed list. The input records are not modified.
func unwrapListStrings(records []*Record) []*Record {
	out := make([]*Record, 0, len(records))
	for _, record := range records {
		fixed := NewRecord()
		for _, key := range record.keys {
			v := record.values[key]
			if s, ok := v.(string); ok && looksLikeList(s) {
				if list, err := literal.ParseList(s); err == nil {
					v = list
				}
			}
			fixed.Set(key, v)
		}
		out = append(out, fixed)
	}
	return out
}

func looksLikeList(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
}

var legacyReplacer = []struct{ old, new string }{
	{`"[`, `[`},
	{`]"`, `]`},
	{`'`, `"`},
	{`\"`, ``},
}

func legacyFixup(text string) string {
	for _, r := range legacyReplacer {
		text = strings.Replace(text, r.old, r.new, -1)
	}
	return text
}
