package splitclient

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/sir_venger/textsplit/pkg/splitproto"
)

// DefaultDownloadConcurrency — сколько частей скачивается одновременно.
const DefaultDownloadConcurrency = 4

// OpenFunc открывает приёмник для одной части (например, файл на диске).
type OpenFunc func(part splitproto.PartResponse) (io.WriteCloser, error)

// DownloadAll скачивает все части разбиения параллельно и пишет каждую в свой приёмник.
// При первой ошибке остальные загрузки отменяются.
func (h *httpClient) DownloadAll(ctx context.Context, res splitproto.SplitResponse, open OpenFunc) error {
	var total int64
	for _, part := range res.Parts {
		total += part.Bytes
	}
	bar := h.newBar(fmt.Sprintf("Downloading %d parts of %s", len(res.Parts), res.FileName), total)
	bar.start()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(DefaultDownloadConcurrency)

	for _, part := range res.Parts {
		part := part
		eg.Go(func() error {
			return h.downloadPart(egCtx, res.SplitID, part, open, bar)
		})
	}

	err := eg.Wait()
	bar.finish(err)
	return err
}

func (h *httpClient) downloadPart(ctx context.Context, splitID string, part splitproto.PartResponse, open OpenFunc, bar *progressBar) (err error) {
	rc, err := h.GetPart(ctx, splitID, part.Index)
	if err != nil {
		return fmt.Errorf("part %d: %w", part.Index, err)
	}
	defer rc.Close()

	dst, err := open(part)
	if err != nil {
		return fmt.Errorf("part %d: %w", part.Index, err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("part %d: %w", part.Index, closeErr)
		}
	}()

	n, err := io.Copy(dst, withProgress(rc, bar))
	if err != nil {
		return fmt.Errorf("part %d: %w", part.Index, err)
	}
	if n != part.Bytes {
		return fmt.Errorf("part %d: unexpected part length: want %d, got %d", part.Index, part.Bytes, n)
	}

	return nil
}
