package resthttp

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sir_venger/textsplit/internal/models"
	"github.com/sir_venger/textsplit/internal/partition"
	"github.com/sir_venger/textsplit/internal/usecase/splitsvc"
	"github.com/sir_venger/textsplit/pkg/httperrors"
	"github.com/sir_venger/textsplit/pkg/splitproto"
)

// splitInput — разобранный запрос на разбиение, общий для raw- и multipart-загрузки.
type splitInput struct {
	fileName string
	parts    string
	unit     string
	body     io.Reader
	close    func()
}

// postSplits принимает файл и число частей, полностью делегируя разбиение сервису.
func (s *Server) postSplits(w http.ResponseWriter, r *http.Request) {
	in, err := s.readSplitInput(w, r)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer in.close()

	var unit models.Unit
	if in.unit != "" {
		if unit, err = models.ParseUnit(in.unit); err != nil {
			httperrors.Write(w, err)
			return
		}
	}

	// Нечисловое значение превращается в 0: Validate вернёт ErrInvalidPartCount,
	// сохранив порядок проверок (сначала тип файла).
	parts, err := partition.ParsePartCount(in.parts)
	if err != nil {
		parts = 0
	}

	res, err := s.SplitService.Split(r.Context(), splitsvc.SplitRequest{
		FileName: in.fileName,
		Reader:   in.body,
		Parts:    parts,
		Unit:     unit,
	})
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf(splitproto.SplitPathFormat, "", res.ID))
	writeJSON(w, http.StatusCreated, s.splitResponse(res))
}

func (s *Server) readSplitInput(w http.ResponseWriter, r *http.Request) (splitInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return splitInput{
			fileName: extractFileName(r),
			parts:    firstNonEmpty(r.Header.Get(splitproto.HeaderParts), r.URL.Query().Get(splitproto.QueryParts)),
			unit:     firstNonEmpty(r.Header.Get(splitproto.HeaderUnit), r.URL.Query().Get(splitproto.QueryUnit)),
			body:     r.Body,
			close:    func() {},
		}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.Cfg.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.Cfg.MaxUploadBytes); err != nil {
		return splitInput{}, fmt.Errorf("%w: parse form: %w", models.ErrReadFailure, err)
	}

	file, header, err := r.FormFile(splitproto.FormFieldFile)
	if err != nil {
		return splitInput{}, fmt.Errorf("%w: form field %q: %w", models.ErrReadFailure, splitproto.FormFieldFile, err)
	}

	return splitInput{
		fileName: header.Filename,
		parts:    firstNonEmpty(r.FormValue(splitproto.FormFieldParts), r.Header.Get(splitproto.HeaderParts)),
		unit:     firstNonEmpty(r.FormValue(splitproto.QueryUnit), r.Header.Get(splitproto.HeaderUnit)),
		body:     file,
		close: func() {
			_ = file.Close()
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		},
	}, nil
}

// extractFileName пытается вытащить имя файла из заголовков или query-параметра.
func extractFileName(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(splitproto.HeaderFileName)); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.Header.Get("X-Filename")); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.URL.Query().Get(splitproto.QueryFileName)); v != "" {
		return v
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (s *Server) splitResponse(res models.SplitResult) splitproto.SplitResponse {
	decimals := s.Cfg.Decimals()
	out := splitproto.SplitResponse{
		SplitID:        res.ID,
		FileName:       res.FileName,
		Unit:           string(res.Unit),
		Size:           res.Size,
		Bytes:          res.Bytes,
		SizeHuman:      partition.FormatSize(res.Bytes, decimals),
		RequestedParts: res.RequestedParts,
		PartCount:      len(res.Parts),
		PartSize:       res.PartSize,
		Parts:          make([]splitproto.PartResponse, 0, len(res.Parts)),
	}
	for _, p := range res.Parts {
		out.Parts = append(out.Parts, splitproto.PartResponse{
			Index:     p.Index,
			FileName:  p.FileName,
			Size:      p.Size,
			Bytes:     p.Bytes,
			SizeHuman: partition.FormatSize(p.Bytes, decimals),
			URL:       fmt.Sprintf(splitproto.PartPathFormat, "", res.ID, p.Index),
		})
	}
	return out
}
