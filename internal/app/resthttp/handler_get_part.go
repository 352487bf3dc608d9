package resthttp

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sir_venger/textsplit/internal/models"
	"github.com/sir_venger/textsplit/pkg/httperrors"
	"github.com/sir_venger/textsplit/pkg/splitproto"
)

// getSplit отдаёт описание разбиения со ссылками на части.
func (s *Server) getSplit(w http.ResponseWriter, r *http.Request) {
	res, err := s.SplitService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.splitResponse(res))
}

// deleteSplit удаляет разбиение, не дожидаясь TTL.
func (s *Server) deleteSplit(w http.ResponseWriter, r *http.Request) {
	if err := s.SplitService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperrors.Write(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getPart отдаёт содержимое части как вложение с производным именем файла.
func (s *Server) getPart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		httperrors.Write(w, fmt.Errorf("%w: invalid index %q", models.ErrPartNotFound, chi.URLParam(r, "idx")))
		return
	}

	res, err := s.SplitService.Get(r.Context(), id)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	part, err := s.SplitService.Part(r.Context(), id, idx)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", splitproto.PartContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": part.FileName}))
	w.Header().Set("Content-Length", strconv.FormatInt(part.Bytes, 10))
	w.Header().Set(splitproto.HeaderPartIndex, strconv.Itoa(part.Index))
	w.Header().Set(splitproto.HeaderPartCount, strconv.Itoa(len(res.Parts)))
	w.Header().Set(splitproto.HeaderRequested, strconv.Itoa(res.RequestedParts))
	w.Header().Set(splitproto.HeaderPartSize, strconv.Itoa(part.Size))

	_, _ = io.WriteString(w, part.Content)
}
