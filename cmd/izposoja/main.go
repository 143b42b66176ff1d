package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/izposoja/internal/api"
	"github.com/erazemk/izposoja/internal/db"
	"github.com/erazemk/izposoja/internal/seed"
	"github.com/erazemk/izposoja/internal/store"
	"github.com/erazemk/izposoja/internal/store/sqlite"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// newLogger builds the level-routing logger over the given writers. If logFile
// is not nil, every level is also written to it.
func newLogger(stdout, stderr, logFile io.Writer) *slog.Logger {
	if logFile != nil {
		stdout = io.MultiWriter(stdout, logFile)
		stderr = io.MultiWriter(stderr, logFile)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	return slog.New(&levelRouter{
		stdout: slog.NewTextHandler(stdout, opts),
		stderr: slog.NewTextHandler(stderr, opts),
	})
}

// setupLogger installs the default logger. Returns a cleanup function that
// closes the log file (if opened).
func setupLogger(logPath string) (func(), error) {
	if logPath == "" {
		slog.SetDefault(newLogger(os.Stdout, os.Stderr, nil))
		return nil, nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(newLogger(os.Stdout, os.Stderr, f))
	return func() { f.Close() }, nil
}

// openStore returns the SQLite store at dbPath, or an in-memory store when
// dbPath is empty. The cleanup function closes the database.
func openStore(dbPath string) (store.Store, func(), error) {
	if dbPath == "" {
		slog.Info("using in-memory store; data is lost on exit")
		return store.NewMemory(), func() {}, nil
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	// Ensure schema exists (idempotent).
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("ensuring schema: %w", err)
	}

	slog.Info("database ready", "path", dbPath)
	return sqlite.New(database), func() { database.Close() }, nil
}

func main() {
	fs := flag.NewFlagSet("izposoja", flag.ContinueOnError)

	var dbPath string
	fs.StringVar(&dbPath, "db", "", "")
	fs.StringVar(&dbPath, "d", "", "")

	var addr string
	fs.StringVar(&addr, "addr", ":5000", "")
	fs.StringVar(&addr, "a", ":5000", "")

	var logPath string
	fs.StringVar(&logPath, "log", "", "")
	fs.StringVar(&logPath, "l", "", "")

	var withSeed bool
	fs.BoolVar(&withSeed, "seed", false, "")
	fs.BoolVar(&withSeed, "s", false, "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: izposoja [flags]

Flags:
  -d, -db <path>          SQLite database path (default: in-memory store)
  -a, -addr <host:port>   listen address (default: :5000)
  -s, -seed               load the sample catalogue into an empty store
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	closeLog, err := setupLogger(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	s, closeStore, err := openStore(dbPath)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if withSeed {
		if err := seed.Load(context.Background(), s); err != nil {
			slog.Error("failed to load seed data", "error", err)
			os.Exit(1)
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(s))

	server := &http.Server{
		Addr:              addr,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped, closing store")
}
