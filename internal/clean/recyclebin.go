package clean

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lakshaymaurya-felt/winsweep/internal/ui"
)

// ─── Shell32 Syscalls ────────────────────────────────────────────────────────

var (
	modShell32          = syscall.NewLazyDLL("shell32.dll")
	procEmptyRecycleBin = modShell32.NewProc("SHEmptyRecycleBinW")
	procQueryRecycleBin = modShell32.NewProc("SHQueryRecycleBinW")
)

const (
	sherbNoConfirmation = 0x00000001
	sherbNoProgressUI   = 0x00000002
	sherbNoSound        = 0x00000004
)

// shQueryRBInfo mirrors the Windows SHQUERYRBINFO struct.
// Go's natural alignment adds padding after cbSize on AMD64,
// matching the C struct layout on both 32-bit and 64-bit.
type shQueryRBInfo struct {
	cbSize      uint32
	i64Size     int64
	i64NumItems int64
}

// queryRecycleBin returns the total byte size held in the recycle store
// of the given drive via the SHQueryRecycleBinW Shell API.
func queryRecycleBin(drive string) (uint64, error) {
	root, err := syscall.UTF16PtrFromString(drive + `:\`)
	if err != nil {
		return 0, err
	}

	var info shQueryRBInfo
	info.cbSize = uint32(unsafe.Sizeof(info))

	ret, _, _ := procQueryRecycleBin.Call(
		uintptr(unsafe.Pointer(root)),
		uintptr(unsafe.Pointer(&info)),
	)
	if ret != 0 {
		return 0, fmt.Errorf("SHQueryRecycleBinW failed: HRESULT 0x%08x", uint32(ret))
	}

	return uint64(info.i64Size), nil
}

// emptyRecycleBin empties the recycle store of the given drive via the
// SHEmptyRecycleBinW Shell API, with no confirmation prompt, progress
// UI, or sound.
func emptyRecycleBin(drive string) error {
	root, err := syscall.UTF16PtrFromString(drive + `:\`)
	if err != nil {
		return err
	}

	flags := uintptr(sherbNoConfirmation | sherbNoProgressUI | sherbNoSound)
	ret, _, _ := procEmptyRecycleBin.Call(0, uintptr(unsafe.Pointer(root)), flags)

	hr := uint32(ret)
	// S_OK (0) = success, E_UNEXPECTED (0x8000FFFF) = bin already empty.
	if hr != 0 && hr != 0x8000FFFF {
		return fmt.Errorf("SHEmptyRecycleBinW failed: HRESULT 0x%08x", hr)
	}

	return nil
}

// PurgeRecycleBin measures the recycle store for the target volume, then
// empties it. Any failure is logged and swallowed; there is no
// partial-empty retry.
func PurgeRecycleBin(drive string, dryRun bool) uint64 {
	size, err := queryRecycleBin(drive)
	if err != nil {
		ui.Debugf("query recycle bin on %s: %v", drive, err)
		size = 0
	}

	if dryRun {
		return size
	}

	if err := emptyRecycleBin(drive); err != nil {
		ui.Warnf("empty recycle bin on %s: %v", drive, err)
		return 0
	}

	return size
}
