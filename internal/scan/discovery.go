package scan

import (
	"context"
	"os"
	"path/filepath"
)

// discoverFiles walks roots and returns every song found, plus the set of
// discovered paths for the cleaning phase.
func discoverFiles(ctx context.Context, roots []string, send func(Progress)) (files []fileInfo, discovered map[string]string, err error) {
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Skip any walk errors - intentionally continuing to scan other paths
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() {
				return nil
			}
			rel := relativePath(root, path)
			if _, _, ok := Classify(rel); !ok {
				return nil
			}

			info, infoErr := d.Info()
			if infoErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}

			files = append(files, fileInfo{
				path:  path,
				name:  filepath.ToSlash(rel),
				mtime: info.ModTime().Unix(),
				root:  root,
			})

			if len(files)%100 == 0 {
				send(Progress{Phase: PhaseScanning, Current: len(files), CurrentFile: rel})
			}
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}

	discovered = make(map[string]string, len(files))
	for _, f := range files {
		discovered[f.path] = f.root
	}
	return files, discovered, nil
}

// relativePath returns the path relative to root, or the full path if not
// under root. A root that is itself a file yields its base name.
func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	if rel == "." {
		return filepath.Base(path)
	}
	return rel
}
