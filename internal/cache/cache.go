// Package cache prunes cached content files that are no longer read.
package cache

import (
	"io/fs"
	"time"

	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/log"
	"github.com/spf13/afero"
)

// TTL is how long an untouched cache file is kept. Tag files of the active
// source are rewritten on every refetch, so only abandoned ones get this old.
const TTL = 7 * 24 * time.Hour

// CollectGarbage removes files under dir not modified within ttl
// and returns how many were removed.
func CollectGarbage(dir string, ttl time.Duration) int {
	var removed int
	now := time.Now()

	err := afero.Walk(filesystem.API(), dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if now.Sub(info.ModTime()) > ttl {
			if err := filesystem.API().Remove(path); err == nil {
				removed++
			}
		}
		return nil
	})
	if err != nil {
		log.Warnf("cache gc %s: %s", dir, err)
	}

	if removed > 0 {
		log.Infof("cache gc: removed %d stale files from %s", removed, dir)
	}
	return removed
}
