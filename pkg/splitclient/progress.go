package splitclient

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sir_venger/textsplit/internal/partition"
)

const (
	progressBarWidth     = 32
	progressRenderPeriod = 120 * time.Millisecond
)

// progressBar рисует одну строку прогресса передачи. Безопасен для вызова из нескольких
// горутин; все методы допускают nil-получатель.
type progressBar struct {
	mu         sync.Mutex
	w          io.Writer
	prefix     string
	total      int64
	current    int64
	lastRender time.Time
	lastWidth  int
	finished   bool
}

func newProgressBar(w io.Writer, prefix string, total int64) *progressBar {
	return &progressBar{w: w, prefix: prefix, total: total}
}

func (p *progressBar) add(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.current += int64(n)
	if time.Since(p.lastRender) >= progressRenderPeriod {
		p.drawLocked("", false)
	}
}

func (p *progressBar) start() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawLocked("", false)
}

// finish печатает итоговую строку; повторные вызовы игнорируются.
func (p *progressBar) finish(err error) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	p.finished = true

	suffix := " done"
	if err != nil {
		suffix = fmt.Sprintf(" failed: %v", err)
	}
	p.drawLocked(suffix, true)
}

func (p *progressBar) drawLocked(suffix string, final bool) {
	line := p.lineLocked() + suffix
	pad := ""
	if p.lastWidth > len(line) {
		pad = strings.Repeat(" ", p.lastWidth-len(line))
	}
	p.lastWidth = len(line)
	p.lastRender = time.Now()

	end := ""
	if final {
		end = "\n"
	}
	fmt.Fprintf(p.w, "\r%s%s%s", line, pad, end)
}

func (p *progressBar) lineLocked() string {
	var b strings.Builder
	b.WriteString(p.prefix)
	b.WriteByte(' ')

	if p.total <= 0 {
		b.WriteString(partition.FormatSize(p.current, 1))
		return b.String()
	}

	ratio := float64(p.current) / float64(p.total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*progressBarWidth + 0.5)
	b.WriteByte('[')
	b.WriteString(strings.Repeat("=", filled))
	b.WriteString(strings.Repeat(" ", progressBarWidth-filled))
	fmt.Fprintf(&b, "] %3d%% %s/%s", int(ratio*100+0.5),
		partition.FormatSize(p.current, 1), partition.FormatSize(p.total, 1))
	return b.String()
}

// countingReader прибавляет прочитанные байты к прогрессу.
type countingReader struct {
	r   io.Reader
	bar *progressBar
}

func (c countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	c.bar.add(n)
	return n, err
}

func withProgress(r io.Reader, bar *progressBar) io.Reader {
	if r == nil || bar == nil {
		return r
	}
	return countingReader{r: r, bar: bar}
}
