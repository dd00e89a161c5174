package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const unit = 1024

var (
	printer   = message.NewPrinter(language.English)
	sizeUnits = []string{"KB", "MB", "GB"}
)

// formatCount groups thousands: 1234567 -> 1,234,567.
func formatCount[T ~int | ~int64](n T) string {
	return printer.Sprintf("%d", n)
}

// formatSize renders a byte count in the first unit where it stays below
// 1024, whole bytes below 1 KB and two decimals otherwise. GB is the last unit.
func formatSize(size float64) string {
	if size < unit {
		return fmt.Sprintf("%.0f B", size)
	}

	value := size / unit

	for i, name := range sizeUnits {
		if value < unit || i == len(sizeUnits)-1 {
			return fmt.Sprintf("%.2f %s", value, name)
		}

		value /= unit
	}

	return ""
}
