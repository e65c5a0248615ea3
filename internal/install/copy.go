package install

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/paths"
)

// filePerm is the mode of newly created files; existing files keep theirs.
const filePerm = 0o644

// scriptPerm is applied to top-level shell scripts after a scripts copy.
const scriptPerm = 0o755

// storeExists reports whether name exists in store.
func storeExists(store fs.FS, name string) (bool, error) {
	_, err := fs.Stat(store, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.Wrapf(err, "checking template %s", name)
	}
}

// copyTree recursively copies the store directory src into dst, creating
// directories as needed and overwriting files. A missing src copies nothing.
// It returns the number of files written.
func copyTree(store fs.FS, src, dst string) (int, error) {
	ok, err := storeExists(store, src)
	if err != nil || !ok {
		return 0, err
	}

	if err := paths.EnsureDir(dst, paths.DefaultDirPerm); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(store, src)
	if err != nil {
		return 0, errors.Wrapf(err, "reading template directory %s", src)
	}

	count := 0
	for _, entry := range entries {
		srcPath := path.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			n, err := copyTree(store, srcPath, dstPath)
			count += n
			if err != nil {
				return count, err
			}
			continue
		}

		if err := copyFile(store, srcPath, dstPath); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// copyFile copies a single store file to dst, truncating any existing file.
func copyFile(store fs.FS, src, dst string) error {
	srcFile, err := store.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening template %s", src)
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrapf(err, "copying %s to %s", src, dst)
	}

	return errors.Wrapf(dstFile.Close(), "closing %s", dst)
}

// copyFileIfAbsent copies src to dst only when dst does not exist and src
// does. The destination is opened with O_EXCL so an existing file is never
// touched. It reports whether a file was written.
func copyFileIfAbsent(store fs.FS, src, dst string) (bool, error) {
	data, err := fs.ReadFile(store, src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "reading template %s", src)
	}

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "creating %s", dst)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, errors.Wrapf(err, "writing %s", dst)
	}
	if err := f.Close(); err != nil {
		return false, errors.Wrapf(err, "closing %s", dst)
	}
	return true, nil
}

// markScripts sets scriptPerm on files directly inside dir whose name ends
// in suffix. Subdirectories are not descended into. A missing dir is a no-op.
func markScripts(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading %s", dir)
	}

	var marked []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		if err := os.Chmod(p, scriptPerm); err != nil {
			return marked, errors.Wrapf(err, "making %s executable", p)
		}
		marked = append(marked, entry.Name())
	}
	return marked, nil
}
