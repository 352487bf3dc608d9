package partition

import (
	"strconv"
	"strings"
)

// BuildFileName строит имя части: <name>_part<index><ext>, без дополнения нулями.
func BuildFileName(name, ext string, index int) string {
	return name + "_part" + strconv.Itoa(index) + ext
}

// SplitFileName делит имя файла по последней точке: "notes.v2.txt" -> "notes.v2", ".txt".
// Имя без точки целиком уходит в name, расширение пустое.
func SplitFileName(fileName string) (name, ext string) {
	i := strings.LastIndex(fileName, ".")
	if i < 0 {
		return fileName, ""
	}
	return fileName[:i], fileName[i:]
}
