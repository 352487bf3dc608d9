package resthttp

import (
	"net/http"
	"strconv"

	"github.com/sir_venger/textsplit/internal/partition"
)

// getEstimate считает подсказку о размере части. Некорректный ввод даёт available=false, а не ошибку.
func (s *Server) getEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	size, err := strconv.ParseInt(q.Get("size"), 10, 64)
	if err != nil || size < 0 {
		size = 0
	}
	parts, err := partition.ParsePartCount(q.Get("parts"))
	if err != nil {
		parts = 0
	}

	writeJSON(w, http.StatusOK, s.SplitService.Estimate(size, parts))
}
