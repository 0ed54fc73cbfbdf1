package excel

import (
	"os"
	"path/filepath"

	"github.com/mafei198/sheetgen/config"
	"github.com/mafei198/sheetgen/logger"
	"github.com/mafei198/sheetgen/misc"
)

const SourceExt = ".xlsx"

type Summary struct {
	Discovered   int
	Converted    int
	Failed       int
	JSONWritten  int
	StubsCreated int
	Tables       []string
	Failures     map[string]error
	// RegistryPath is empty when no registry was written.
	RegistryPath string
}

type Exporter struct {
	cfg    *config.Config
	reader *Reader
	json   JSONOptions
}

func New(cfg *config.Config) (*Exporter, error) {
	reader, err := NewReaderByName(cfg.Reader)
	if err != nil {
		return nil, err
	}
	return &Exporter{
		cfg:    cfg,
		reader: reader,
		json:   JSONOptions{LegacyFixup: cfg.LegacyJSONFixup},
	}, nil
}

// Export runs one batch with cfg.
func Export(cfg *config.Config) (*Summary, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// Run clears the JSON output, converts every workbook found in the input
// directory and writes the table registry. A workbook that fails is logged
// and skipped; only failing to list the input directory aborts the run.
func (e *Exporter) Run() (*Summary, error) {
	summary := &Summary{
		Tables:   make([]string, 0),
		Failures: map[string]error{},
	}

	e.cleanCache()

	files, err := misc.ListFiles(e.cfg.ExcelFolderPath, SourceExt)
	if err != nil {
		return nil, err
	}
	summary.Discovered = len(files)
	logger.INFO("found Excel files: ", files)
	if len(files) == 0 {
		logger.INFO("no Excel files found in ", e.cfg.ExcelFolderPath)
		return summary, nil
	}

	for _, dir := range []string{e.cfg.TableOutputPath, e.cfg.ExtendOutputPath} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	registry := NewRegistry(e.cfg.TableSettingPath, len(files))
	for i, fileName := range files {
		tableName := misc.BaseName(fileName)
		path := filepath.Join(e.cfg.ExcelFolderPath, fileName)

		if err := e.convert(path, tableName, summary); err != nil {
			logger.ERRf("failed to process %s: %v", fileName, err)
			summary.Failed++
			summary.Failures[fileName] = err
		} else {
			summary.Converted++
		}

		summary.Tables = append(summary.Tables, tableName)
		flushed, err := registry.Record(tableName, i+1)
		if err != nil {
			logger.ERRf("failed to register table %s: %v", tableName, err)
		}
		if flushed {
			summary.RegistryPath = registry.Path()
			logger.INFO("wrote table registry: ", registry.Path())
		}
	}
	return summary, nil
}

func (e *Exporter) cleanCache() {
	result, err := misc.CleanDir(e.cfg.TableOutputPath)
	if err != nil {
		logger.ERRf("failed to clear JSON cache %s: %v", e.cfg.TableOutputPath, err)
		return
	}
	if !result.Exists {
		logger.INFO("JSON cache directory does not exist: ", e.cfg.TableOutputPath)
		return
	}
	for _, failure := range result.Failures {
		logger.ERR("failed to delete cached file: ", failure)
	}
	logger.INFOf("cleared JSON cache (%d files)", len(result.Removed))
}

// convert handles one workbook. A stub that cannot be written is logged and
// does not keep the JSON from being written.
func (e *Exporter) convert(path, tableName string, summary *Summary) (err error) {
	defer misc.RecoverPanic("convert "+tableName, &err)

	records, err := e.reader.Read(path)
	if err != nil {
		return err
	}
	logger.DEBUG("read ", len(records), " records from ", path)

	var sample *Record
	if len(records) > 0 {
		sample = records[0]
	}
	stubPath, created, err := EmitSchemaStub(tableName, e.cfg.ExtendOutputPath, sample)
	switch {
	case err != nil:
		logger.ERRf("failed to write schema stub %s: %v", stubPath, err)
	case created:
		summary.StubsCreated++
		logger.INFO("wrote schema stub: ", stubPath)
	default:
		logger.INFO("schema stub already exists: ", stubPath)
	}

	jsonPath, err := WriteJSON(records, e.cfg.TableOutputPath, tableName, e.json)
	if err != nil {
		return err
	}
	if jsonPath == "" {
		logger.WARN("no data rows in ", path, ", JSON skipped")
		return nil
	}
	summary.JSONWritten++
	logger.INFO("wrote JSON: ", jsonPath)
	return nil
}
