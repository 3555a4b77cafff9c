package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotPercentUsed(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want float64
	}{
		{"zero capacity never divides by zero", Snapshot{}, 0},
		{"half used", Snapshot{Used: 512, Free: 512}, 50},
		{"full", Snapshot{Used: 1 << 30}, 100},
		{"two decimals", Snapshot{Used: 2, Free: 1}, 66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.PercentUsed())
		})
	}
}
