package catalog

import "time"

// Unlock releases a lock taken with Lock.
type Unlock func() error

const lockPollInterval = 25 * time.Millisecond

// LockPath returns the advisory lock file used for the catalog at path.
func LockPath(path string) string {
	return path + ".lock"
}
