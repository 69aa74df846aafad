package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const maxSymlinkHops = 40

// resolveTarget follows symlinks from path to the file that actually holds
// the catalog and returns it with the permissions a rewrite must keep. The
// mode is zero when the target does not exist yet.
func resolveTarget(path string) (string, fs.FileMode, error) {
	for hops := 0; hops < maxSymlinkHops; hops++ {
		info, err := os.Lstat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, 0, nil
		}
		if err != nil {
			return "", 0, err
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return path, info.Mode().Perm(), nil
		}
		link, err := os.Readlink(path)
		if err != nil {
			return "", 0, err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(path), link)
		}
		path = link
	}
	return "", 0, fmt.Errorf("resolve %s: too many levels of symbolic links", path)
}
