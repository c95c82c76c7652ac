// Command sparsecalc loads two sparse matrices from text files and adds,
// subtracts or multiplies them, either through an interactive menu, as a
// one-shot operation (-op), or continuously as the files change (-watch).
//
// Usage:
//
//	sparsecalc [-a matrix1.txt] [-b matrix2.txt] [-op add|sub|mul [-watch]]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvsparse/internal/config"
	"github.com/katalvlaran/lvsparse/internal/logger"
	"github.com/katalvlaran/lvsparse/internal/menu"
	"github.com/katalvlaran/lvsparse/internal/watch"
	"github.com/katalvlaran/lvsparse/matrix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("sparsecalc", args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger.Init(cfg.Logger(stderr))
	log := logger.ForComponent("main")

	fmt.Fprintln(stdout, "Sparse Matrix Operations")

	a, b, err := load(cfg)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	log.Debug("operands loaded",
		"a", cfg.PathA, "a_dims", dims(a), "a_nnz", a.NNZ(),
		"b", cfg.PathB, "b_dims", dims(b), "b_nnz", b.NNZ())

	if cfg.Op == config.OpNone {
		s := &menu.Session{A: a, B: b, In: stdin, Out: stdout}
		if err := s.Loop(); err != nil {
			return 1
		}
		return 0
	}

	op, _ := menu.Lookup(cfg.Op) // Validate guarantees a known name
	if err := menu.Run(op, a, b, stdout); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		if !cfg.Watch {
			return 1
		}
	}
	if !cfg.Watch {
		return 0
	}

	return watchLoop(ctx, cfg, op, stdout, log)
}

// load reads both operands with the configured parser options.
func load(cfg config.Config) (a, b *matrix.Sparse, err error) {
	a, err = matrix.ReadFile(cfg.PathA, cfg.ParseOptions()...)
	if err != nil {
		return nil, nil, err
	}
	b, err = matrix.ReadFile(cfg.PathB, cfg.ParseOptions()...)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// watchLoop recomputes op whenever an operand file changes. Load and
// operation errors are reported and the loop keeps running.
func watchLoop(ctx context.Context, cfg config.Config, op menu.Operation, stdout io.Writer, log *slog.Logger) int {
	recompute := func(changed []string) {
		log.Info("operands changed, recomputing", "paths", changed, "op", op.Name)
		a, b, err := load(cfg)
		if err == nil {
			err = menu.Run(op, a, b, stdout)
		}
		if err != nil {
			log.Warn("recompute failed", "error", err)
			fmt.Fprintf(stdout, "Error: %v\n", err)
		}
	}

	w, err := watch.New([]string{cfg.PathA, cfg.PathB}, cfg.Debounce, recompute)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	log.Info("watching operands", "a", cfg.PathA, "b", cfg.PathB, "debounce", cfg.Debounce)
	if err := w.Run(ctx); err != nil {
		log.Error("watcher stopped", "error", err)
		return 1
	}

	return 0
}

func dims(m *matrix.Sparse) string {
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
