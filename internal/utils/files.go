package utils

import (
	"io/fs"
	"path/filepath"
)

// FindFiles recursively finds every file under dir whose extension matches
// one of ext (each given with its leading dot, e.g. ".py"). An empty ext
// list matches every file.
func FindFiles(dir string, ext ...string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if len(ext) == 0 || matchesExt(path, ext) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

func matchesExt(path string, ext []string) bool {
	got := filepath.Ext(path)
	for _, e := range ext {
		if got == e {
			return true
		}
	}
	return false
}
