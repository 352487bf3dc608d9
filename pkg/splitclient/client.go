package splitclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sir_venger/textsplit/pkg/splitproto"
)

type SplitRequest struct {
	FileName string
	Reader   io.Reader
	Size     int64
	Parts    int
	Unit     string
}

// EstimateResponse — ответ /estimate.
type EstimateResponse struct {
	SizeBytes int64  `json:"size_bytes"`
	SizeHuman string `json:"size_human"`
	Parts     int    `json:"parts"`
	PartBytes int    `json:"part_bytes"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type Client interface {
	// Split Загрузить файл и разбить его на части
	Split(ctx context.Context, req SplitRequest) (splitproto.SplitResponse, error)
	// Get Получить описание разбиения
	Get(ctx context.Context, splitID string) (splitproto.SplitResponse, error)
	// GetPart Скачать одну часть
	GetPart(ctx context.Context, splitID string, index int) (io.ReadCloser, error)
	// DownloadAll Скачать все части параллельно
	DownloadAll(ctx context.Context, res splitproto.SplitResponse, open OpenFunc) error
	// Estimate Узнать примерный размер части
	Estimate(ctx context.Context, size int64, parts int) (EstimateResponse, error)
}

// APIError — ошибка, которую вернул сервис разбиения.
type APIError struct {
	Status  int
	Reason  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("split service: %d %s: %s", e.Status, e.Reason, e.Message)
	}
	return fmt.Sprintf("split service: %d %s", e.Status, http.StatusText(e.Status))
}

type httpClient struct {
	c        *http.Client
	baseURL  string
	progress io.Writer
}

// Option настраивает клиент.
type Option func(*httpClient)

// WithHTTPClient подменяет http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpClient) { h.c = c }
}

// WithProgress включает прогресс-бар в w (обычно os.Stderr).
func WithProgress(w io.Writer) Option {
	return func(h *httpClient) { h.progress = w }
}

// New создаёт HTTP-клиент сервиса разбиения.
func New(baseURL string, opts ...Option) Client {
	h := &httpClient{
		c:       &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Split загружает содержимое файла и возвращает описание получившихся частей.
func (h *httpClient) Split(ctx context.Context, req SplitRequest) (splitproto.SplitResponse, error) {
	bar := h.newBar(fmt.Sprintf("Uploading %s", req.FileName), req.Size)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+splitproto.SplitsPath, withProgress(req.Reader, bar))
	if err != nil {
		return splitproto.SplitResponse{}, err
	}
	if req.Size > 0 {
		httpReq.ContentLength = req.Size
	}
	httpReq.Header.Set("Content-Type", "application/octet-stream")
	httpReq.Header.Set(splitproto.HeaderFileName, req.FileName)
	httpReq.Header.Set(splitproto.HeaderParts, strconv.Itoa(req.Parts))
	if req.Unit != "" {
		httpReq.Header.Set(splitproto.HeaderUnit, req.Unit)
	}

	bar.start()
	var out splitproto.SplitResponse
	err = h.do(httpReq, http.StatusCreated, &out)
	bar.finish(err)
	if err != nil {
		return splitproto.SplitResponse{}, err
	}
	return out, nil
}

// Get возвращает описание ранее созданного разбиения.
func (h *httpClient) Get(ctx context.Context, splitID string) (splitproto.SplitResponse, error) {
	u := fmt.Sprintf(splitproto.SplitPathFormat, h.baseURL, url.PathEscape(splitID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return splitproto.SplitResponse{}, err
	}

	var out splitproto.SplitResponse
	if err = h.do(req, http.StatusOK, &out); err != nil {
		return splitproto.SplitResponse{}, err
	}
	return out, nil
}

// GetPart скачивает часть и возвращает поток с телом.
func (h *httpClient) GetPart(ctx context.Context, splitID string, index int) (io.ReadCloser, error) {
	u := fmt.Sprintf(splitproto.PartPathFormat, h.baseURL, url.PathEscape(splitID), index)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp.Body, nil
}

// Estimate запрашивает подсказку о размере части.
func (h *httpClient) Estimate(ctx context.Context, size int64, parts int) (EstimateResponse, error) {
	q := url.Values{}
	q.Set("size", strconv.FormatInt(size, 10))
	q.Set("parts", strconv.Itoa(parts))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+splitproto.EstimatePath+"?"+q.Encode(), nil)
	if err != nil {
		return EstimateResponse{}, err
	}

	var out EstimateResponse
	if err = h.do(req, http.StatusOK, &out); err != nil {
		return EstimateResponse{}, err
	}
	return out, nil
}

func (h *httpClient) do(req *http.Request, want int, out any) error {
	resp, err := h.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (h *httpClient) newBar(prefix string, total int64) *progressBar {
	if h.progress == nil {
		return nil
	}
	return newProgressBar(h.progress, prefix, total)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body splitproto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Reason = body.Reason
		apiErr.Message = body.Message
	}
	return apiErr
}
