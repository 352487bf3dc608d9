package splitsvc

import (
	"context"
	"fmt"

	"github.com/sir_venger/textsplit/internal/models"
	"github.com/sir_venger/textsplit/internal/partition"
)

// Get возвращает сохранённое разбиение.
func (s *Splits) Get(ctx context.Context, id string) (models.SplitResult, error) {
	return s.MetaStorage.Get(ctx, id)
}

// Part возвращает одну часть по 1-based индексу.
func (s *Splits) Part(ctx context.Context, id string, index int) (models.Part, error) {
	res, err := s.MetaStorage.Get(ctx, id)
	if err != nil {
		return models.Part{}, err
	}

	part, ok := res.PartByIndex(index)
	if !ok {
		return models.Part{}, fmt.Errorf("%w: index %d of %d", models.ErrPartNotFound, index, len(res.Parts))
	}
	return part, nil
}

// Delete удаляет разбиение до истечения TTL.
func (s *Splits) Delete(ctx context.Context, id string) error {
	return s.MetaStorage.Delete(ctx, id)
}

// Estimate считает подсказку о размере части; на само разбиение не влияет.
func (s *Splits) Estimate(sizeBytes int64, parts int) Estimate {
	est := Estimate{
		SizeBytes: sizeBytes,
		SizeHuman: partition.FormatSize(sizeBytes, s.Decimals),
		Parts:     parts,
		Message:   partition.DescribeEstimate(sizeBytes, parts, s.Decimals),
	}
	if sizeBytes <= int64(^uint(0)>>1) {
		if approx, ok := partition.EstimatePartSize(int(sizeBytes), parts); ok {
			est.PartBytes = approx
			est.Available = true
		}
	}
	return est
}
