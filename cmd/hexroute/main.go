// Command hexroute is the command-stream façade over the hex-grid
// path-cost engine: it reads whitespace-delimited commands from
// stdin, one per line, and writes "OK"/"KO" or an integer cost to
// stdout, until stdin is exhausted or the process receives
// SIGINT/SIGTERM.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelmap/hexroute/engine"
	"github.com/kestrelmap/hexroute/internal/config"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig)
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	eng := engine.New(engine.Config{CacheCapacity: cfg.CacheCapacity})
	d := newDispatcher(eng, logger, cfg.MaxDimension)

	g.Go(func() error {
		// Cancelling on return releases the signal watcher at EOF.
		defer cancel()
		return serve(gctx, os.Stdin, os.Stdout, d)
	})

	return g.Wait()
}

// serve reads one command per line from in and writes the dispatcher's
// response to out, stopping at EOF or at the first line read after ctx
// is cancelled. A read already blocked on in is not interrupted by
// cancellation.
func serve(ctx context.Context, in *os.File, out *os.File, d *dispatcher) error {
	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		resp := d.handle(scanner.Text())
		if resp == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, resp); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// parseLogLevel converts a config string to a slog.Level, defaulting
// to Info for an empty or unrecognized value.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
