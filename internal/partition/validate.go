// Package partition реализует разбиение текстового содержимого на упорядоченные части:
// проверку входных данных, расчёт границ частей, имена файлов частей и оценку размера.
//
// Все функции пакета чистые: они не читают файлы, не пишут на диск и не держат состояния.
package partition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sir_venger/textsplit/internal/models"
)

// MinParts — минимально допустимое число частей.
const MinParts = 2

// AllowedExtensions — белый список расширений текстовых файлов.
var AllowedExtensions = []string{".txt", ".csv", ".log", ".json", ".xml", ".html", ".css", ".js"}

// IsAllowedFile сверяет суффикс имени файла с белым списком без учёта регистра.
func IsAllowedFile(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, ext := range AllowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Validate проверяет запрос на разбиение. Порядок проверок фиксирован:
// тип файла, затем число частей, затем соотношение частей и размера.
func Validate(fileName string, size, desiredParts int) error {
	if !IsAllowedFile(fileName) {
		return fmt.Errorf("%w: %q", models.ErrUnsupportedFileType, fileName)
	}
	if desiredParts < MinParts {
		return fmt.Errorf("%w: %d, minimum is %d", models.ErrInvalidPartCount, desiredParts, MinParts)
	}
	if desiredParts > size {
		return fmt.Errorf("%w: %d parts for %d units", models.ErrTooManyParts, desiredParts, size)
	}
	return nil
}

// ParsePartCount строго разбирает число частей из пользовательского ввода.
// Диапазон здесь не проверяется: это делает Validate.
func ParsePartCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty value", models.ErrInvalidPartCount)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", models.ErrInvalidPartCount, raw)
	}
	return n, nil
}
