package clean

import (
	"time"

	"github.com/lakshaymaurya-felt/winsweep/internal/analyze"
	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
	"github.com/lakshaymaurya-felt/winsweep/internal/winsvc"
)

// UpdateServiceName is the Windows Update service. It holds locks on
// the download cache, so it is stopped around the delete.
const UpdateServiceName = "wuauserv"

// serviceStopTimeout is the maximum time to wait for the update service
// to reach the Stopped state.
const serviceStopTimeout = 30 * time.Second

// PurgeUpdateCache stops the update service, deletes the contents of
// the SoftwareDistribution download directory, and restarts the
// service. The restart runs on every exit path — the service must never
// be left stopped, even when the stop or delete step failed.
func PurgeUpdateCache(drive string, ctl winsvc.Controller, dryRun bool) uint64 {
	return purgeUpdateCache(config.UpdateCacheDir(drive), ctl, dryRun)
}

func purgeUpdateCache(dir string, ctl winsvc.Controller, dryRun bool) uint64 {
	if dryRun {
		return analyze.TreeSize(dir)
	}

	if err := ctl.Stop(UpdateServiceName, serviceStopTimeout); err != nil {
		ui.Warnf("stop %s: %v", UpdateServiceName, err)
	}
	defer func() {
		if err := ctl.Start(UpdateServiceName); err != nil {
			ui.Warnf("restart %s: %v", UpdateServiceName, err)
		}
	}()

	return PurgeDirContents(dir, false)
}
