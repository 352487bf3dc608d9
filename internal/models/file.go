package models

import (
	"fmt"
	"strings"
	"time"
)

// Unit — единица содержимого, в которой считаются размер и границы частей.
type Unit string

const (
	UnitRune     Unit = "rune"
	UnitByte     Unit = "byte"
	UnitGrapheme Unit = "grapheme"
)

// ParseUnit разбирает имя единицы; пустая строка означает UnitRune.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case "", UnitRune:
		return UnitRune, nil
	case UnitByte:
		return UnitByte, nil
	case UnitGrapheme:
		return UnitGrapheme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}

// SourceFile — исходный файл целиком в памяти. Не изменяется после создания.
type SourceFile struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Content   string `json:"-"`
	Unit      Unit   `json:"unit"`
	Size      int    `json:"size"`
}

// FileName собирает исходное имя файла обратно.
func (f SourceFile) FileName() string {
	return f.Name + f.Extension
}

// Part описывает одну часть разбиения.
type Part struct {
	Index    int    `json:"index"`
	FileName string `json:"file_name"`
	Size     int    `json:"size"`
	Bytes    int64  `json:"bytes"`
	Content  string `json:"-"`
}

// SplitResult содержит все части одного разбиения.
type SplitResult struct {
	ID             string    `json:"split_id"`
	FileName       string    `json:"file_name"`
	Unit           Unit      `json:"unit"`
	Size           int       `json:"size"`
	Bytes          int64     `json:"bytes"`
	RequestedParts int       `json:"requested_parts"`
	PartSize       int       `json:"part_size"`
	Parts          []Part    `json:"parts"`
	CreatedAt      time.Time `json:"created_at"`
}

// Clone возвращает копию структуры, чтобы не делиться внутренним срезом частей.
func (r SplitResult) Clone() SplitResult {
	out := r
	out.Parts = append([]Part(nil), r.Parts...)
	return out
}

// PartByIndex ищет часть по 1-based индексу.
func (r SplitResult) PartByIndex(index int) (Part, bool) {
	if index < 1 || index > len(r.Parts) {
		return Part{}, false
	}
	p := r.Parts[index-1]
	return p, p.Index == index
}

// ChunkPlan описывает, на сколько частей реально делится содержимое и какого они размера.
type ChunkPlan struct {
	Total int
	Size  int
}
