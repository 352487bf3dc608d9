package partition

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/sir_venger/textsplit/internal/models"
)

// Count возвращает длину содержимого в заданных единицах.
func Count(content string, unit models.Unit) int {
	switch unit {
	case models.UnitByte:
		return len(content)
	case models.UnitGrapheme:
		return uniseg.GraphemeClusterCount(content)
	default:
		return utf8.RuneCountInString(content)
	}
}

// offsets возвращает байтовые смещения начала каждой единицы и len(content) последним элементом.
// Для UnitByte возвращает nil: смещение совпадает с номером единицы.
func offsets(content string, unit models.Unit) []int {
	switch unit {
	case models.UnitByte:
		return nil
	case models.UnitGrapheme:
		out := make([]int, 0, len(content)+1)
		gr := uniseg.NewGraphemes(content)
		for gr.Next() {
			from, _ := gr.Positions()
			out = append(out, from)
		}
		return append(out, len(content))
	default:
		out := make([]int, 0, len(content)+1)
		for i := range content {
			out = append(out, i)
		}
		return append(out, len(content))
	}
}

// NewSourceFile создаёт неизменяемое описание исходного файла.
func NewSourceFile(fileName, content string, unit models.Unit) models.SourceFile {
	name, ext := SplitFileName(fileName)
	return models.SourceFile{
		Name:      name,
		Extension: ext,
		Content:   content,
		Unit:      unit,
		Size:      Count(content, unit),
	}
}
