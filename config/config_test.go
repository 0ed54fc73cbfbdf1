package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, `{
  "excel_folder_path": "./excels",
  "out_put_table_path": "./out/json",
  "out_put_extends_path": "./out/extends",
  "legacy_json_fixup": true,
  "redis_addr": "127.0.0.1:6379"
}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./excels", cfg.ExcelFolderPath)
	assert.Equal(t, "./out/json", cfg.TableOutputPath)
	assert.Equal(t, "./out/extends", cfg.ExtendOutputPath)
	assert.Equal(t, DefaultTableSettingPath, cfg.TableSettingPath)
	assert.Equal(t, ReaderTealeg, cfg.Reader)
	assert.True(t, cfg.LegacyJSONFixup)
	assert.Equal(t, "table_data", cfg.RedisKey)
	assert.Equal(t, "tables", cfg.MongoCollection)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
excel_folder_path: excels
out_put_table_path: json
out_put_extends_path: extends
table_setting_path: manager
reader: Excelize
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "manager", cfg.TableSettingPath)
	assert.Equal(t, ReaderExcelize, cfg.Reader)
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed", `{"excel_folder_path": `},
		{"Missing keys", `{"excel_folder_path": "x"}`},
		{"Unknown reader", `{"excel_folder_path": "a", "out_put_table_path": "b", "out_put_extends_path": "c", "reader": "csv"}`},
		{"Mongo without database", `{"excel_folder_path": "a", "out_put_table_path": "b", "out_put_extends_path": "c", "mongo_uri": "mongodb://localhost"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigLoad))
			var loadErr *ConfigLoadError
			assert.True(t, errors.As(err, &loadErr))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrConfigLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/etc/sheetgen.json")
	assert.Equal(t, "/etc/sheetgen.json", Path())
	t.Setenv(EnvPath, "")
	assert.Equal(t, FileName, Path())
}
