package partition

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultDecimals — точность FormatSize по умолчанию.
const DefaultDecimals = 2

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// EstimatePartSize возвращает примерный размер одной части для показа пользователю.
// Значение подсказочное: реальные границы считает Ranges, последняя часть может быть меньше.
func EstimatePartSize(size, desiredParts int) (int, bool) {
	if size <= 0 || desiredParts <= 0 {
		return 0, false
	}
	return PartSize(size, desiredParts), true
}

// DescribeEstimate формирует строку подсказки по размеру файла в байтах.
func DescribeEstimate(sizeBytes int64, desiredParts, decimals int) string {
	if sizeBytes > int64(^uint(0)>>1) {
		return "Each part will be approx. N/A"
	}
	approx, ok := EstimatePartSize(int(sizeBytes), desiredParts)
	if !ok {
		return "Each part will be approx. N/A"
	}
	return "Each part will be approx. " + FormatSize(int64(approx), decimals)
}

// FormatSize переводит байты в строку с шагом 1024: 1536 -> "1.5 KB", 0 -> "0 Bytes".
// Мантисса округляется до decimals знаков, незначащие нули отбрасываются.
func FormatSize(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := ""
	if bytes < 0 {
		sign = "-"
	}
	value := math.Abs(float64(bytes))
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return sign + decimal.NewFromFloat(value).Round(int32(decimals)).String() + " " + sizeUnits[unit]
}
