// Package fsutil provides file system helpers shared by the loaders.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// FindFilesByExtension recursively searches rootPath for files whose name
// ends with the given extension (e.g. ".hcl") and returns their full paths
// in walk order.
func FindFilesByExtension(rootPath, extension string) ([]string, error) {
	if extension == "" {
		return nil, fmt.Errorf("fsutil: extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == extension {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
