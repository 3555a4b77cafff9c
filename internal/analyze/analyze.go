package analyze

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
	"github.com/lakshaymaurya-felt/winsweep/internal/core"
	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

// Item is the measured size of one location from the fixed table.
type Item struct {
	Label string
	Bytes uint64
}

// GB returns the item's size in binary gigabytes, two decimals.
func (i Item) GB() float64 {
	return core.ToGB(i.Bytes)
}

// Result holds the per-location breakdown in table order, including
// zero-size locations. Rendering omits the zero entries; the total
// covers all of them.
type Result struct {
	Items      []Item
	TotalBytes uint64
}

// TotalGB returns the total across all locations in binary gigabytes.
func (r Result) TotalGB() float64 {
	return core.ToGB(r.TotalBytes)
}

// isReparsePoint returns true if the path is a Windows junction or symlink
// (FILE_ATTRIBUTE_REPARSE_POINT). Must be checked to avoid infinite recursion.
func isReparsePoint(path string) bool {
	pathp, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(pathp)
	if err != nil {
		return false
	}
	const fileAttributeReparsePoint = 0x0400
	return attrs&fileAttributeReparsePoint != 0
}

// longPath adds the \\?\ prefix for paths exceeding MAX_PATH on Windows.
func longPath(path string) string {
	if len(path) >= 260 && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}

// TreeSize recursively sums the byte size of every file under root,
// hidden and system files included. Unreadable entries and missing
// paths contribute 0; the walk never fails.
func TreeSize(root string) uint64 {
	var total uint64
	walkRoot := longPath(root)

	_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			ui.Debugf("cannot read %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// NEVER follow junction points / reparse points — infinite recursion risk.
			if path != walkRoot && isReparsePoint(path) {
				ui.Debugf("skipping junction/reparse: %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		info, err := d.Info()
		if err != nil {
			ui.Debugf("cannot stat %s: %v", path, err)
			return nil
		}
		total += uint64(info.Size())
		return nil
	})

	return total
}

// Run measures every location in the fixed table for the given drive.
// progress receives the label currently being measured; pass nil when no
// progress surface is wanted. Run never deletes and is always safe to
// call standalone.
func Run(drive string, progress func(label string)) Result {
	return Measure(config.Locations(drive), progress)
}

// Measure sizes each location in order, tolerating missing or unreadable
// paths as zero-byte contributions.
func Measure(locs []config.Location, progress func(label string)) Result {
	var res Result

	for _, loc := range locs {
		if progress != nil {
			progress("Measuring " + loc.Label)
		}
		size := TreeSize(loc.Path)
		res.Items = append(res.Items, Item{Label: loc.Label, Bytes: size})
		res.TotalBytes += size
	}

	return res
}

// Print renders the itemized breakdown: one line per non-zero location
// in table order, then the total across all locations.
func Print(res Result) {
	for _, line := range renderLines(res) {
		ui.Printf("%s", line)
	}
}

// renderLines builds the itemized output. Zero-size locations are
// omitted to reduce noise; the total line still includes them.
func renderLines(res Result) []string {
	var lines []string
	for _, item := range res.Items {
		if item.Bytes == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-16s %8.2f GB", item.Label, item.GB()))
	}
	lines = append(lines, fmt.Sprintf("  %-16s %8.2f GB", "Total", res.TotalGB()))
	return lines
}
