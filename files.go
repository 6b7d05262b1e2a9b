/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
)

// humanReadableSize formats a byte count using SI units.
func humanReadableSize(bytes int) string {
	const units = "kMGTPE"

	if bytes < 1000 {
		return fmt.Sprintf("%d B", bytes)
	}

	size := float64(bytes)
	exp := -1
	for size >= 1000 && exp < len(units)-1 {
		size /= 1000
		exp++
	}

	return fmt.Sprintf("%.1f %cB", size, units[exp])
}
