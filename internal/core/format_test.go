package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes uint64
		want  string
	}{
		{"zero", 0, "0 Bytes"},
		{"below threshold", 1023, "1023 Bytes"},
		{"one kilobyte", 1024, "1.00 KB"},
		{"kilobytes", 1536, "1.50 KB"},
		{"megabytes", 5 * 1 << 20, "5.00 MB"},
		{"one gigabyte", 1 << 30, "1.00 GB"},
		{"fractional gigabytes", 3 * 1 << 29, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestToGB(t *testing.T) {
	assert.Equal(t, 0.0, ToGB(0))
	assert.Equal(t, 1.0, ToGB(1<<30))
	assert.Equal(t, 1.5, ToGB(3*1<<29))
	assert.Equal(t, 0.25, ToGB(1<<28))
}

func TestPercentUsed(t *testing.T) {
	tests := []struct {
		name string
		used uint64
		free uint64
		want float64
	}{
		{"empty volume reports zero", 0, 0, 0},
		{"full volume", 100, 0, 100},
		{"unused volume", 0, 100, 0},
		{"half used", 50, 50, 50},
		{"rounded to two decimals", 1, 3, 25},
		{"one third", 1, 2, 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentUsed(tt.used, tt.free))
		})
	}
}
