package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sir_venger/textsplit/internal/models"
	"github.com/sir_venger/textsplit/internal/partition"
	"github.com/sir_venger/textsplit/internal/usecase/splitsvc"
	"github.com/sir_venger/textsplit/pkg/splitclient"
	"github.com/sir_venger/textsplit/pkg/splitproto"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// writeConcurrency — сколько файлов частей пишется одновременно.
const writeConcurrency = 4

type options struct {
	parts        string
	outDir       string
	unit         string
	server       string
	file         string
	rejectBinary bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run разбирает флаги и выполняет разбиение; возвращает код выхода.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "split: ", 0)

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Print(err)
		return exitUsage
	}

	var produced, requested int
	if opts.server != "" {
		produced, requested, err = splitRemote(ctx, opts, stdout, stderr)
	} else {
		produced, requested, err = splitLocal(ctx, opts, stdout)
	}
	if err != nil {
		logger.Print(describe(err))
		return exitFailure
	}

	fmt.Fprintf(stdout, "Split into %d parts (requested %d) in %s\n", produced, requested, opts.outDir)
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.parts, "parts", "2", "number of parts")
	fs.StringVar(&opts.outDir, "out", ".", "directory for part files")
	fs.StringVar(&opts.unit, "unit", "", "content unit: rune, byte or grapheme")
	fs.StringVar(&opts.server, "server", "", "split service URL; empty splits locally")
	fs.BoolVar(&opts.rejectBinary, "reject-binary", true, "refuse content that does not look like text (local mode)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: split [-parts N] [-out DIR] [-unit rune|byte|grapheme] [-server URL] [-reject-binary=false] FILE")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, errors.New("exactly one FILE argument is required")
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

func splitLocal(ctx context.Context, opts options, stdout io.Writer) (int, int, error) {
	unit, err := models.ParseUnit(opts.unit)
	if err != nil {
		return 0, 0, err
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", models.ErrReadFailure, err)
	}
	fmt.Fprintf(stdout, "File size: %s\n", partition.FormatSize(int64(len(data)), partition.DefaultDecimals))

	desired, err := partition.ParsePartCount(opts.parts)
	if err != nil {
		desired = 0
	}
	fmt.Fprintln(stdout, partition.DescribeEstimate(int64(len(data)), desired, partition.DefaultDecimals))

	src := partition.NewSourceFile(filepath.Base(opts.file), string(data), unit)
	if err := partition.Validate(src.FileName(), src.Size, desired); err != nil {
		return 0, 0, err
	}
	if opts.rejectBinary {
		if err := splitsvc.CheckText(data); err != nil {
			return 0, 0, err
		}
	}

	parts := partition.Split(src, desired)
	if err := writeParts(ctx, opts.outDir, parts); err != nil {
		return 0, 0, err
	}
	return len(parts), desired, nil
}

func splitRemote(ctx context.Context, opts options, stdout, stderr io.Writer) (int, int, error) {
	desired, err := partition.ParsePartCount(opts.parts)
	if err != nil {
		desired = 0
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", models.ErrReadFailure, err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", models.ErrReadFailure, err)
	}

	cli := splitclient.New(opts.server, splitclient.WithProgress(stderr))

	est, err := cli.Estimate(ctx, st.Size(), desired)
	if err != nil {
		return 0, 0, err
	}
	fmt.Fprintf(stdout, "File size: %s\n", est.SizeHuman)
	fmt.Fprintln(stdout, est.Message)

	res, err := cli.Split(ctx, splitclient.SplitRequest{
		FileName: filepath.Base(opts.file),
		Reader:   f,
		Size:     st.Size(),
		Parts:    desired,
		Unit:     opts.unit,
	})
	if err != nil {
		return 0, 0, err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return 0, 0, err
	}
	err = cli.DownloadAll(ctx, res, func(part splitproto.PartResponse) (io.WriteCloser, error) {
		path, err := partPath(opts.outDir, part.FileName)
		if err != nil {
			return nil, err
		}
		return os.Create(path)
	})
	if err != nil {
		return 0, 0, err
	}
	return res.PartCount, res.RequestedParts, nil
}

// writeParts записывает части в outDir параллельно.
func writeParts(ctx context.Context, outDir string, parts []models.Part) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(writeConcurrency)
	for _, part := range parts {
		part := part
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			path, err := partPath(outDir, part.FileName)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(part.Content), 0o644); err != nil {
				return fmt.Errorf("part %d: %w", part.Index, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

// partPath кладёт часть строго внутрь outDir: от имени остаётся только базовое имя.
func partPath(outDir, name string) (string, error) {
	base := filepath.Base(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	switch base {
	case ".", "..", string(filepath.Separator), "":
		return "", fmt.Errorf("invalid part file name %q", name)
	}
	return filepath.Join(outDir, base), nil
}

// describe выбирает сообщение для пользователя: ошибки разбиения показываются так же, как в API.
func describe(err error) string {
	var apiErr *splitclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if models.Reason(err) != models.ReasonInternal {
		return models.Message(err)
	}
	return err.Error()
}
