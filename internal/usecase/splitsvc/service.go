package splitsvc

import (
	"context"
	"io"
	"time"

	"github.com/sir_venger/textsplit/internal/models"
)

type (
	// MetaStorage хранилище результатов разбиения.
	MetaStorage interface {
		Get(ctx context.Context, id string) (models.SplitResult, error)
		Save(ctx context.Context, res models.SplitResult) error
		Delete(ctx context.Context, id string) error
	}

	// Service объединяет операции разбиения файлов и выдачи частей.
	Service interface {
		Split(ctx context.Context, req SplitRequest) (models.SplitResult, error)
		Get(ctx context.Context, id string) (models.SplitResult, error)
		Part(ctx context.Context, id string, index int) (models.Part, error)
		Delete(ctx context.Context, id string) error
		Estimate(sizeBytes int64, parts int) Estimate
	}
)

// SplitRequest — входные данные одного разбиения. Unit пустой означает единицу по умолчанию.
type SplitRequest struct {
	FileName string
	Reader   io.Reader
	Parts    int
	Unit     models.Unit
}

// Estimate — подсказка о размере части до запуска разбиения.
type Estimate struct {
	SizeBytes int64  `json:"size_bytes"`
	SizeHuman string `json:"size_human"`
	Parts     int    `json:"parts"`
	PartBytes int    `json:"part_bytes,omitempty"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type Deps struct {
	MetaStorage    MetaStorage
	MaxUploadBytes int64
	Unit           models.Unit
	RejectBinary   bool
	Decimals       int
	Now            func() time.Time
}

type Splits struct {
	Deps
}

// New конструирует сервис разбиения с заданными зависимостями.
func New(deps Deps) *Splits {
	if deps.Unit == "" {
		deps.Unit = models.UnitRune
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Splits{Deps: deps}
}

var _ Service = (*Splits)(nil)
