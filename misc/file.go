package misc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ListFiles returns the names of regular files directly inside dir whose
// extension is ext, in the order the directory yields them.
func ListFiles(dir, ext string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := f.Readdir(-1)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ext {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

func FileExists(path string) bool {
	_, err := os.Lstat(path)
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	return true
}

// BaseName strips directory and extension and returns the NFC form, so a
// table keeps one name regardless of how the filesystem encodes it. Leading
// dots are part of the name: ".xlsx" is named ".xlsx".
func BaseName(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndex(name, "."); i > 0 && strings.Trim(name[:i], ".") != "" {
		name = name[:i]
	}
	return norm.NFC.String(name)
}

type FileDeletionError struct {
	Path string
	Err  error
}

func (e *FileDeletionError) Error() string {
	return fmt.Sprintf("delete %s: %v", e.Path, e.Err)
}

func (e *FileDeletionError) Unwrap() error {
	return e.Err
}

type CleanResult struct {
	Exists   bool
	Removed  []string
	Failures []*FileDeletionError
}

// CleanDir removes every regular file and symlink directly inside dir and
// leaves subdirectories alone. A missing dir is not an error. Failing to
// remove one file does not stop the others.
func CleanDir(dir string) (*CleanResult, error) {
	result := &CleanResult{}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	result.Exists = true

	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		fi, err := os.Lstat(path)
		if err != nil {
			result.Failures = append(result.Failures, &FileDeletionError{Path: path, Err: err})
			continue
		}
		if !fi.Mode().IsRegular() && fi.Mode()&os.ModeSymlink == 0 {
			continue
		}
		if err := os.Remove(path); err != nil {
			result.Failures = append(result.Failures, &FileDeletionError{Path: path, Err: err})
			continue
		}
		result.Removed = append(result.Removed, path)
	}
	return result, nil
}

// WriteFile creates the parent directory of path when needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
