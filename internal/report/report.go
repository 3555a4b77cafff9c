package report

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/yusufpapurcu/wmi"

	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

// Win32_LogicalDisk mirrors the WMI class of the same name. Nullable
// fields are pointers so rows for unformatted or removable volumes
// still unmarshal.
type Win32_LogicalDisk struct {
	DeviceID   string
	VolumeName *string
	FileSystem *string
}

// Snapshot is a point-in-time view of a volume's capacity. Used+Free
// tracks Total best-effort; filesystem metadata overhead may drift.
type Snapshot struct {
	Total uint64
	Used  uint64
	Free  uint64

	VolumeName string
	FileSystem string
}

// PercentUsed returns the snapshot's used percentage, two decimals,
// zero for a zero-capacity volume.
func (s Snapshot) PercentUsed() float64 {
	return core.PercentUsed(s.Used, s.Free)
}

// Query returns the current capacity snapshot for the drive letter.
// An unresolvable volume returns ok=false and produces no output; the
// caller skips reporting and continues.
func Query(drive string) (Snapshot, bool) {
	var disks []Win32_LogicalDisk
	q := wmi.CreateQuery(&disks, fmt.Sprintf("WHERE DeviceID = '%s:'", drive))
	if err := wmi.Query(q, &disks); err != nil {
		ui.Debugf("WMI logical disk query for %s: failed: %v", drive, err)
		return Snapshot{}, false
	}
	if len(disks) == 0 {
		ui.Debugf("volume %s: not found, skipping report", drive)
		return Snapshot{}, false
	}

	usage, err := disk.Usage(drive + `:\`)
	if err != nil {
		ui.Debugf("usage query for %s: failed: %v", drive, err)
		return Snapshot{}, false
	}

	snap := Snapshot{
		Total: usage.Total,
		Used:  usage.Used,
		Free:  usage.Free,
	}
	if disks[0].VolumeName != nil {
		snap.VolumeName = *disks[0].VolumeName
	}
	if disks[0].FileSystem != nil {
		snap.FileSystem = *disks[0].FileSystem
	}
	return snap, true
}

// Print renders the fixed-format capacity report for one snapshot.
func Print(drive string, snap Snapshot) {
	label := snap.VolumeName
	if label == "" {
		label = "Local Disk"
	}
	if snap.FileSystem != "" {
		label += ", " + snap.FileSystem
	}

	ui.Headerf("Drive %s: (%s)", drive, label)
	ui.Printf("  Total:  %s", core.FormatSize(snap.Total))
	ui.Printf("  Used:   %s (%.2f%% used)", core.FormatSize(snap.Used), snap.PercentUsed())
	ui.Printf("  Free:   %s", core.FormatSize(snap.Free))
}
