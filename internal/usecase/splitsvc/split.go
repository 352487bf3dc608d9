package splitsvc

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/sir_venger/textsplit/internal/models"
	"github.com/sir_venger/textsplit/internal/partition"
)

// Split читает содержимое целиком, проверяет запрос, делит содержимое на части и сохраняет результат.
func (s *Splits) Split(ctx context.Context, req SplitRequest) (models.SplitResult, error) {
	unit := req.Unit
	if unit == "" {
		unit = s.Unit
	}

	// Тип файла известен до чтения: неподходящий файл не читается вовсе.
	fileName := cleanFileName(req.FileName)
	if !partition.IsAllowedFile(fileName) {
		return models.SplitResult{}, fmt.Errorf("%w: %q", models.ErrUnsupportedFileType, fileName)
	}

	content, err := s.readAll(ctx, req.Reader)
	if err != nil {
		return models.SplitResult{}, err
	}

	src := partition.NewSourceFile(fileName, string(content), unit)
	if err = partition.Validate(fileName, src.Size, req.Parts); err != nil {
		return models.SplitResult{}, err
	}
	if s.RejectBinary {
		if err = CheckText(content); err != nil {
			return models.SplitResult{}, err
		}
	}

	plan := partition.Plan(src.Size, req.Parts)
	parts := partition.Split(src, req.Parts)
	if plan.Total != len(parts) {
		return models.SplitResult{}, fmt.Errorf("split %q: planned %d parts, produced %d", fileName, plan.Total, len(parts))
	}

	res := models.SplitResult{
		ID:             uuid.NewString(),
		FileName:       src.FileName(),
		Unit:           src.Unit,
		Size:           src.Size,
		Bytes:          int64(len(content)),
		RequestedParts: req.Parts,
		PartSize:       plan.Size,
		Parts:          parts,
		CreatedAt:      s.Now().UTC(),
	}

	if err = s.MetaStorage.Save(ctx, res); err != nil {
		return models.SplitResult{}, fmt.Errorf("save split: %w", err)
	}

	return res, nil
}

// readAll читает весь поток; частичное содержимое никогда не возвращается.
func (s *Splits) readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no content", models.ErrReadFailure)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrReadFailure, err)
	}

	var src io.Reader = r
	if s.MaxUploadBytes > 0 {
		src = io.LimitReader(r, s.MaxUploadBytes+1)
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrReadFailure, err)
	}
	if s.MaxUploadBytes > 0 && int64(len(b)) > s.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %w: limit is %d bytes", models.ErrReadFailure, models.ErrContentTooLarge, s.MaxUploadBytes)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrReadFailure, err)
	}

	return b, nil
}

// CheckText отклоняет содержимое, которое не похоже на текст. Текст в однобайтовых
// кодировках (например, Latin-1) проходит: части режутся по байтам без потерь.
func CheckText(content []byte) error {
	detected := mimetype.Detect(content)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf("%w: detected %s", models.ErrBinaryContent, detected.String())
}

// cleanFileName оставляет только базовое имя, отбрасывая клиентские каталоги.
func cleanFileName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	base := path.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
