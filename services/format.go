package services

import (
	"fmt"
	"math"
)

// 결과가 없을 때 표시
const zeroFormatted = "0h 0m"

// FormatMinutes : 분을 "1h 5m" 형태로 표시
func FormatMinutes(minutes float64) string {
	if math.IsNaN(minutes) || minutes < 0 {
		return zeroFormatted
	}
	hours := int(math.Floor(minutes / 60))
	mins := int(math.Round(math.Mod(minutes, 60)))
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
