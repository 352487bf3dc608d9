package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sir_venger/textsplit/internal/app/resthttp"
	"github.com/sir_venger/textsplit/internal/config"
	"github.com/sir_venger/textsplit/pkg/splitproto"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readPart(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}

func TestRun_Local(t *testing.T) {
	in := writeInput(t, "notes.txt", "ABCDE")
	out := t.TempDir()
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-parts", "4", "-out", out, in}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	want := map[string]string{"notes_part1.txt": "AB", "notes_part2.txt": "CD", "notes_part3.txt": "E"}
	for name, content := range want {
		if got := readPart(t, out, name); got != content {
			t.Fatalf("%s = %q, want %q", name, got, content)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "notes_part4.txt")); !os.IsNotExist(err) {
		t.Fatalf("unexpected fourth part")
	}
	if !strings.Contains(stdout.String(), "Split into 3 parts (requested 4)") {
		t.Fatalf("stdout: %s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "File size: 5 Bytes") {
		t.Fatalf("stdout: %s", stdout.String())
	}
}

func TestRun_LocalValidation(t *testing.T) {
	cases := []struct {
		name string
		file string
		args []string
		msg  string
	}{
		{"type", "image.png", []string{"-parts", "2"}, "Invalid file type"},
		{"one part", "a.txt", []string{"-parts", "1"}, "valid number of parts"},
		{"garbage", "a.txt", []string{"-parts", "abc"}, "valid number of parts"},
		{"too many", "a.txt", []string{"-parts", "50"}, "cannot exceed"},
		{"unit", "a.txt", []string{"-unit", "word"}, "Unknown content unit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := writeInput(t, tc.file, "hello")
			var stdout, stderr bytes.Buffer
			args := append(append([]string{}, tc.args...), "-out", t.TempDir(), in)

			if code := run(context.Background(), args, &stdout, &stderr); code != exitFailure {
				t.Fatalf("exit %d, want %d", code, exitFailure)
			}
			if !strings.Contains(stderr.String(), tc.msg) {
				t.Fatalf("stderr %q does not mention %q", stderr.String(), tc.msg)
			}
		})
	}
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{filepath.Join(t.TempDir(), "nope.txt")}, &stdout, &stderr)
	if code != exitFailure {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stderr.String(), "Error reading file.") {
		t.Fatalf("stderr: %s", stderr.String())
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), nil, &stdout, &stderr); code != exitUsage {
		t.Fatalf("exit %d, want %d", code, exitUsage)
	}
}

func TestRun_Remote(t *testing.T) {
	h, _, err := resthttp.NewServer(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	in := writeInput(t, "log.csv", "ABCDEFGHIJ")
	out := filepath.Join(t.TempDir(), "parts")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-server", srv.URL, "-parts", "3", "-out", out, in}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	for name, content := range map[string]string{"log_part1.csv": "ABCD", "log_part2.csv": "EFGH", "log_part3.csv": "IJ"} {
		if got := readPart(t, out, name); got != content {
			t.Fatalf("%s = %q, want %q", name, got, content)
		}
	}
	if !strings.Contains(stdout.String(), "Each part will be approx. 4 Bytes") {
		t.Fatalf("stdout: %s", stdout.String())
	}

	stderr.Reset()
	code = run(context.Background(), []string{"-server", srv.URL, "-parts", "3", "-out", out, writeInput(t, "x.pdf", "hello")}, &stdout, &stderr)
	if code != exitFailure || !strings.Contains(stderr.String(), "Invalid file type") {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
}

func TestPartPath_StaysInsideOutDir(t *testing.T) {
	out := t.TempDir()
	cases := map[string]string{
		"notes_part1.txt":     "notes_part1.txt",
		"../../evil.txt":      "evil.txt",
		"/etc/passwd":         "passwd",
		`..\..\win_part2.txt`: "win_part2.txt",
	}
	for name, want := range cases {
		got, err := partPath(out, name)
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		if got != filepath.Join(out, want) {
			t.Fatalf("%q -> %q, want %q", name, got, filepath.Join(out, want))
		}
	}
	for _, name := range []string{"", "..", "/"} {
		if _, err := partPath(out, name); err == nil {
			t.Fatalf("%q must be rejected", name)
		}
	}
}

func TestRun_LocalRejectsBinary(t *testing.T) {
	in := writeInput(t, "image.txt", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-out", t.TempDir(), in}, &stdout, &stderr)
	if code != exitFailure || !strings.Contains(stderr.String(), "does not look like text") {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	code = run(context.Background(), []string{"-reject-binary=false", "-out", t.TempDir(), in}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d with binary check disabled, stderr: %s", code, stderr.String())
	}
}

func TestRun_RemoteIgnoresServerDirectories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(splitproto.EstimatePath, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"size_human": "2 Bytes", "message": "Each part will be approx. 1 Bytes"})
	})
	mux.HandleFunc(splitproto.SplitsPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(splitproto.SplitResponse{
			SplitID:        "s1",
			PartCount:      1,
			RequestedParts: 2,
			Parts:          []splitproto.PartResponse{{Index: 1, FileName: "../escape.txt", Bytes: 2}},
		})
	})
	mux.HandleFunc("/splits/s1/parts/1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ab")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	root := t.TempDir()
	out := filepath.Join(root, "out")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-server", srv.URL, "-out", out, writeInput(t, "ab.txt", "ab")}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if got := readPart(t, out, "escape.txt"); got != "ab" {
		t.Fatalf("part content = %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.txt")); !os.IsNotExist(err) {
		t.Fatalf("part escaped the output directory")
	}
}
