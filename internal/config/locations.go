package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Location is one named cleanup target. The table below is static
// configuration; order matters for display only.
type Location struct {
	// Label is the unique display name for this location.
	Label string

	// Path is the absolute directory the location resolves to.
	Path string
}

// windowsDir returns the Windows directory for the given drive letter.
// On the system drive %WINDIR% is honored (covers non-standard install
// directories); other drives use the conventional X:\Windows layout.
func windowsDir(drive string) string {
	if strings.EqualFold(drive, DefaultDrive()) {
		if w := os.Getenv("WINDIR"); w != "" {
			return w
		}
	}
	return drive + `:\Windows`
}

// userTempDir returns the current user's temp directory.
// Falls back to %LOCALAPPDATA%\Temp only if %TEMP% is not set.
func userTempDir() string {
	if t := os.Getenv("TEMP"); t != "" {
		return filepath.Clean(t)
	}
	return filepath.Join(os.Getenv("LOCALAPPDATA"), "Temp")
}

// RecycleBinRoot returns the per-volume recycle store directory.
func RecycleBinRoot(drive string) string {
	return drive + `:\$Recycle.Bin`
}

// UpdateCacheDir returns the Windows Update download cache directory
// on the given drive.
func UpdateCacheDir(drive string) string {
	return filepath.Join(windowsDir(drive), "SoftwareDistribution", "Download")
}

// TempDirs returns the system and user temp directories targeted by the
// temp-file purge, deduplicated case-insensitively since %TEMP% often
// resolves to the same directory on both lists.
func TempDirs(drive string) []string {
	dirs := []string{
		filepath.Join(windowsDir(drive), "Temp"),
		userTempDir(),
	}

	seen := make(map[string]bool, len(dirs))
	var unique []string
	for _, d := range dirs {
		cleaned := filepath.Clean(d)
		key := strings.ToLower(cleaned)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, cleaned)
		}
	}
	return unique
}

// Locations returns the fixed table of measured cleanup locations for
// the given drive, in display order.
func Locations(drive string) []Location {
	w := windowsDir(drive)

	return []Location{
		{Label: "Windows Temp", Path: filepath.Join(w, "Temp")},
		{Label: "User Temp", Path: userTempDir()},
		{Label: "Recycle Bin", Path: RecycleBinRoot(drive)},
		{Label: "Windows Update", Path: filepath.Join(w, "SoftwareDistribution", "Download")},
		{Label: "Windows Logs", Path: filepath.Join(w, "Logs")},
		{Label: "Prefetch", Path: filepath.Join(w, "Prefetch")},
	}
}
