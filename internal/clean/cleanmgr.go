package clean

import (
	"fmt"
	"os/exec"

	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

// LaunchDiskCleanup starts the interactive Disk Cleanup utility scoped
// to the target drive and returns without waiting for it. The process
// handle is released immediately, so the utility outlives this program.
// Freed space is never measured here — the tool completes on its own
// schedule.
func LaunchDiskCleanup(drive string, dryRun bool) error {
	if dryRun {
		ui.Debugf("would launch cleanmgr.exe /d %s:", drive)
		return nil
	}

	cmd := exec.Command("cleanmgr.exe", "/d", drive+":")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch cleanmgr: %w", err)
	}
	return cmd.Process.Release()
}
