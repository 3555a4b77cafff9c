package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"All", OpAll},
		{"TempFiles", OpTempFiles},
		{"WindowsUpdate", OpWindowsUpdate},
		{"RecycleBin", OpRecycleBin},
		{"SystemCleanup", OpSystemCleanup},
		{"Analyze", OpAnalyze},
		{"analyze", OpAnalyze},
		{"RECYCLEBIN", OpRecycleBin},
		{" All ", OpAll},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			op, err := ParseOperation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}

func TestParseOperationRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "Everything", "Temp Files", "All;RecycleBin"} {
		_, err := ParseOperation(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestValidateDrive(t *testing.T) {
	t.Run("accepts single letters", func(t *testing.T) {
		for _, in := range []string{"C", "c", "d", "Z"} {
			got, err := ValidateDrive(in)
			require.NoError(t, err)
			assert.Equal(t, strings.ToUpper(in), got)
		}
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, in := range []string{"", "C:", "CD", "1", "$", `C\`, " C"} {
			_, err := ValidateDrive(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func TestLocationsTable(t *testing.T) {
	locs := Locations("D")

	var labels []string
	for _, l := range locs {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{
		"Windows Temp",
		"User Temp",
		"Recycle Bin",
		"Windows Update",
		"Windows Logs",
		"Prefetch",
	}, labels)

	// Labels are unique and every path is absolute.
	seen := make(map[string]bool)
	for _, l := range locs {
		assert.False(t, seen[l.Label], "duplicate label %q", l.Label)
		seen[l.Label] = true
		assert.NotEmpty(t, l.Path)
	}
}

func TestLocationsDriveRooted(t *testing.T) {
	t.Setenv("SYSTEMDRIVE", "C:")
	locs := Locations("D")

	byLabel := make(map[string]string, len(locs))
	for _, l := range locs {
		byLabel[l.Label] = l.Path
	}

	assert.Equal(t, `D:\$Recycle.Bin`, byLabel["Recycle Bin"])
	assert.Equal(t, `D:\Windows\Temp`, byLabel["Windows Temp"])
	assert.Equal(t, `D:\Windows\SoftwareDistribution\Download`, byLabel["Windows Update"])
	assert.Equal(t, `D:\Windows\Logs`, byLabel["Windows Logs"])
	assert.Equal(t, `D:\Windows\Prefetch`, byLabel["Prefetch"])
}

func TestTempDirsDeduplicates(t *testing.T) {
	t.Setenv("WINDIR", `Q:\Windows`)
	t.Setenv("SYSTEMDRIVE", "Q:")
	t.Setenv("TEMP", `q:\windows\temp`)

	dirs := TempDirs("Q")
	assert.Len(t, dirs, 1)
}
