package clean

import (
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/winsweep/internal/analyze"
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

// PurgeTempFiles deletes everything under the system and user temp
// directories, best-effort, and returns the bytes freed across both.
// A failure on one directory never stops the other.
func PurgeTempFiles(drive string, dryRun bool) uint64 {
	var freed uint64
	for _, dir := range config.TempDirs(drive) {
		freed += PurgeDirContents(dir, dryRun)
	}
	return freed
}

// PurgeDirContents removes every entry directly under dir, recursing
// into subdirectories. Locked or in-use entries are skipped with a
// warning, never retried; the loop always continues to the next entry.
// Returns the bytes of the entries that were fully removed.
func PurgeDirContents(dir string, dryRun bool) uint64 {
	entries, err := os.ReadDir(dir)
	if err != nil {
		ui.Warnf("cannot enumerate %s: %v", dir, err)
		return 0
	}

	var freed uint64
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		var size uint64
		if e.IsDir() {
			size = analyze.TreeSize(path)
		} else if info, ierr := e.Info(); ierr == nil {
			size = uint64(info.Size())
		}

		if dryRun {
			ui.Debugf("would remove %s (%s)", path, core.FormatSize(size))
			freed += size
			continue
		}

		if err := os.RemoveAll(path); err != nil {
			ui.Warnf("cannot remove %s: %v", path, err)
			continue
		}
		ui.Debugf("removed %s (%s)", path, core.FormatSize(size))
		freed += size
	}

	return freed
}
