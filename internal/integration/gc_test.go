package integration

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	meta "github.com/sir_venger/textsplit/internal/repo"
	"github.com/sir_venger/textsplit/pkg/splitclient"
)

func Test_SplitGC_RemovesExpiredSplits(t *testing.T) {
	rest, srv := newRest(t)
	cli := splitclient.New(rest.URL)
	ctx := context.Background()

	res, err := cli.Split(ctx, splitclient.SplitRequest{FileName: "old.txt", Reader: strings.NewReader("hello world"), Parts: 2})
	if err != nil {
		t.Fatal(err)
	}

	// однократный проход GC "из будущего"
	if removed := srv.Store.Sweep(time.Now().Add(time.Hour), 30*time.Minute); removed != 1 {
		t.Fatalf("removed %d splits, want 1", removed)
	}

	_, err = cli.Get(ctx, res.SplitID)
	var apiErr *splitclient.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound || apiErr.Reason != "not_found" {
		t.Fatalf("expected 404 after sweep, got %v", err)
	}
}

func Test_SplitGC_Background(t *testing.T) {
	rest, srv := newRest(t)
	cli := splitclient.New(rest.URL)
	ctx := context.Background()

	if _, err := cli.Split(ctx, splitclient.SplitRequest{FileName: "a.txt", Reader: strings.NewReader("abcdef"), Parts: 3}); err != nil {
		t.Fatal(err)
	}

	stop := meta.StartGC(srv.Store, time.Nanosecond, 5*time.Millisecond)
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for srv.Store.Len() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("split was not collected")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
