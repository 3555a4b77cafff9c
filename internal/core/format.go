package core

import (
	"fmt"
	"math"
)

// Binary size unit thresholds.
const (
	KB uint64 = 1 << 10
	MB uint64 = 1 << 20
	GB uint64 = 1 << 30
)

// FormatSize renders a byte count using the largest unit (GB, MB, KB) in
// which the value is at least 1, with two decimal places. Values below
// 1024 are printed as a plain integer with the "Bytes" label.
func FormatSize(bytes uint64) string {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d Bytes", bytes)
	}
}

// ToGB converts a byte count to binary gigabytes rounded to two decimals.
func ToGB(bytes uint64) float64 {
	return math.Round(float64(bytes)/float64(GB)*100) / 100
}

// PercentUsed returns used/(used+free) as a percentage rounded to two
// decimals. A zero-capacity volume reports 0 rather than dividing by zero.
func PercentUsed(used, free uint64) float64 {
	total := used + free
	if total == 0 {
		return 0
	}
	return math.Round(float64(used)/float64(total)*100*100) / 100
}
