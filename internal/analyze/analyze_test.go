package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/winsweep/internal/config"
)

// writeFile creates a file of the given size under dir, making parents
// as needed.
func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

func TestTreeSize(t *testing.T) {
	t.Run("sums nested files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.tmp", 100)
		writeFile(t, dir, filepath.Join("sub", "b.log"), 200)
		writeFile(t, dir, filepath.Join("sub", "deep", "c.dat"), 300)

		assert.Equal(t, uint64(600), TreeSize(dir))
	})

	t.Run("missing path contributes zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), TreeSize(filepath.Join(t.TempDir(), "nope")))
	})

	t.Run("empty directory is zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), TreeSize(t.TempDir()))
	})
}

func TestMeasure(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	writeFile(t, dir1, "a.tmp", 1024)
	writeFile(t, dir2, "b.tmp", 2048)

	locs := []config.Location{
		{Label: "First", Path: dir1},
		{Label: "Missing", Path: filepath.Join(dir1, "does-not-exist")},
		{Label: "Second", Path: dir2},
	}

	var seen []string
	res := Measure(locs, func(label string) { seen = append(seen, label) })

	// Table order is preserved, missing location contributes zero.
	require.Len(t, res.Items, 3)
	assert.Equal(t, Item{Label: "First", Bytes: 1024}, res.Items[0])
	assert.Equal(t, Item{Label: "Missing", Bytes: 0}, res.Items[1])
	assert.Equal(t, Item{Label: "Second", Bytes: 2048}, res.Items[2])

	// Total is the arithmetic sum including the zero entry.
	assert.Equal(t, uint64(3072), res.TotalBytes)

	// Progress reported every location, in order.
	assert.Equal(t, []string{
		"Measuring First",
		"Measuring Missing",
		"Measuring Second",
	}, seen)
}

func TestRenderLinesOmitsZeroLocations(t *testing.T) {
	res := Result{
		Items: []Item{
			{Label: "Windows Temp", Bytes: 3 * 1 << 29},
			{Label: "User Temp", Bytes: 0},
			{Label: "Prefetch", Bytes: 1 << 30},
		},
		TotalBytes: 3*1<<29 + 1<<30,
	}

	lines := renderLines(res)

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Windows Temp")
	assert.Contains(t, lines[0], "1.50 GB")
	assert.Contains(t, lines[1], "Prefetch")
	assert.Contains(t, lines[1], "1.00 GB")
	assert.Contains(t, lines[2], "Total")
	assert.Contains(t, lines[2], "2.50 GB")
}

func TestItemGB(t *testing.T) {
	assert.Equal(t, 1.5, Item{Bytes: 3 * 1 << 29}.GB())
	assert.Equal(t, 0.0, Item{}.GB())
}
