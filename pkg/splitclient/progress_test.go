package splitclient

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestProgressBar_NilSafe(t *testing.T) {
	var bar *progressBar
	bar.start()
	bar.add(10)
	bar.finish(nil)

	r := strings.NewReader("abc")
	if withProgress(r, nil) != io.Reader(r) {
		t.Fatalf("reader must be returned as is without a bar")
	}
}

func TestProgressBar_CountsAndFinishes(t *testing.T) {
	var out bytes.Buffer
	bar := newProgressBar(&out, "Uploading a.txt", 2048)

	n, err := io.Copy(io.Discard, withProgress(strings.NewReader(strings.Repeat("x", 2048)), bar))
	if err != nil || n != 2048 {
		t.Fatalf("copy: %d, %v", n, err)
	}
	bar.finish(nil)
	bar.finish(errors.New("ignored"))

	got := out.String()
	if !strings.HasSuffix(got, "\n") || !strings.Contains(got, "100% 2 KB/2 KB done") {
		t.Fatalf("unexpected output %q", got)
	}
	if strings.Contains(got, "ignored") {
		t.Fatalf("second finish must be a no-op: %q", got)
	}
}

func TestProgressBar_Failure(t *testing.T) {
	var out bytes.Buffer
	bar := newProgressBar(&out, "Downloading", 0)
	bar.add(5)
	bar.finish(errors.New("boom"))

	if !strings.Contains(out.String(), "5 Bytes failed: boom") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
