package httperrors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sir_venger/textsplit/internal/models"
	"github.com/sir_venger/textsplit/pkg/splitproto"
)

// Status сопоставляет ошибку сервиса HTTP-статусу.
func Status(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrPartNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrContentTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, models.ErrReadFailure), errors.Is(err, models.ErrInvalidUnit):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnsupportedFileType), errors.Is(err, models.ErrBinaryContent):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, models.ErrInvalidPartCount), errors.Is(err, models.ErrTooManyParts):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Write отдаёт ошибку клиенту в виде JSON с кодом причины и сообщением для пользователя.
func Write(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(err))
	_ = json.NewEncoder(w).Encode(splitproto.ErrorResponse{
		Reason:  models.Reason(err),
		Message: models.Message(err),
		Error:   err.Error(),
	})
}
