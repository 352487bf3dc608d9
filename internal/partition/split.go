package partition

import "github.com/sir_venger/textsplit/internal/models"

// Range — полуинтервал [Start, End) в единицах содержимого для части с 1-based индексом.
type Range struct {
	Index int
	Start int
	End   int
}

// Len возвращает длину диапазона в единицах.
func (r Range) Len() int { return r.End - r.Start }

// PartSize возвращает ceil(total/desiredParts); для вырожденных входов — 0.
func PartSize(total, desiredParts int) int {
	if total <= 0 || desiredParts <= 0 {
		return 0
	}
	return (total + desiredParts - 1) / desiredParts
}

// Ranges вычисляет границы частей фиксированного размера ceil(total/desiredParts).
//
// Итерация, чей старт выходит за конец содержимого, ничего не порождает, поэтому частей
// может получиться меньше, чем запрошено: total=5, desiredParts=4 даёт 2+2+1.
func Ranges(total, desiredParts int) []Range {
	size := PartSize(total, desiredParts)
	if size == 0 {
		return nil
	}

	out := make([]Range, 0, min(desiredParts, total))
	for i := 0; i < desiredParts; i++ {
		start := i * size
		if start >= total {
			continue
		}
		out = append(out, Range{
			Index: len(out) + 1,
			Start: start,
			End:   min(start+size, total),
		})
	}
	return out
}

// Plan возвращает фактическое число частей и их размер без нарезки содержимого.
func Plan(total, desiredParts int) models.ChunkPlan {
	return models.ChunkPlan{
		Total: len(Ranges(total, desiredParts)),
		Size:  PartSize(total, desiredParts),
	}
}

// Split нарезает содержимое файла на части в единицах src.Unit.
// Ошибок не возвращает: входы должны быть заранее проверены через Validate.
func Split(src models.SourceFile, desiredParts int) []models.Part {
	offs := offsets(src.Content, src.Unit)
	total := len(src.Content)
	if offs != nil {
		total = len(offs) - 1
	}
	byteAt := func(unit int) int {
		if offs == nil {
			return unit
		}
		return offs[unit]
	}

	ranges := Ranges(total, desiredParts)
	parts := make([]models.Part, 0, len(ranges))
	for _, r := range ranges {
		content := src.Content[byteAt(r.Start):byteAt(r.End)]
		parts = append(parts, models.Part{
			Index:    r.Index,
			FileName: BuildFileName(src.Name, src.Extension, r.Index),
			Size:     r.Len(),
			Bytes:    int64(len(content)),
			Content:  content,
		})
	}
	return parts
}
