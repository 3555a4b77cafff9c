package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Operation selects which cleanup steps a run performs.
type Operation int

const (
	// OpAll runs every non-interactive cleanup action.
	OpAll Operation = iota
	// OpTempFiles purges the system and user temp directories.
	OpTempFiles
	// OpWindowsUpdate purges the Windows Update download cache.
	OpWindowsUpdate
	// OpRecycleBin empties the Recycle Bin for the target volume.
	OpRecycleBin
	// OpSystemCleanup launches the interactive cleanmgr utility.
	OpSystemCleanup
	// OpAnalyze measures reclaimable space without deleting anything.
	OpAnalyze
)

// operationNames maps the canonical CLI spelling to each operation.
var operationNames = map[string]Operation{
	"all":           OpAll,
	"tempfiles":     OpTempFiles,
	"windowsupdate": OpWindowsUpdate,
	"recyclebin":    OpRecycleBin,
	"systemcleanup": OpSystemCleanup,
	"analyze":       OpAnalyze,
}

// String returns the canonical CLI spelling of the operation.
func (op Operation) String() string {
	switch op {
	case OpAll:
		return "All"
	case OpTempFiles:
		return "TempFiles"
	case OpWindowsUpdate:
		return "WindowsUpdate"
	case OpRecycleBin:
		return "RecycleBin"
	case OpSystemCleanup:
		return "SystemCleanup"
	case OpAnalyze:
		return "Analyze"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// ParseOperation matches a --operation flag value (case-insensitive)
// against the closed set of operations.
func ParseOperation(s string) (Operation, error) {
	op, ok := operationNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return OpAll, fmt.Errorf("unknown operation %q (expected All, TempFiles, WindowsUpdate, RecycleBin, SystemCleanup, or Analyze)", s)
	}
	return op, nil
}

// drivePattern accepts exactly one ASCII letter.
var drivePattern = regexp.MustCompile(`^[A-Za-z]$`)

// ValidateDrive checks a --drive flag value against the single-letter
// pattern and returns it normalized to upper case. Validation happens
// before any volume or filesystem access.
func ValidateDrive(s string) (string, error) {
	if !drivePattern.MatchString(s) {
		return "", fmt.Errorf("invalid drive %q (expected a single letter, e.g. C)", s)
	}
	return strings.ToUpper(s), nil
}

// DefaultDrive returns the system drive letter from %SYSTEMDRIVE%.
// Falls back to C only if the variable is not set.
func DefaultDrive() string {
	if d := os.Getenv("SYSTEMDRIVE"); len(d) >= 1 {
		return strings.ToUpper(d[:1])
	}
	return "C"
}
