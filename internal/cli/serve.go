package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/dentsim"
	httpAdapter "github.com/aretw0/dentsim/internal/adapters/http"
	"github.com/aretw0/dentsim/internal/presentation/tui"
	"github.com/aretw0/dentsim/pkg/adapters/memory"
	"github.com/aretw0/dentsim/pkg/adapters/redis"
	"github.com/aretw0/dentsim/pkg/observability"
	"github.com/aretw0/dentsim/pkg/ports"
	"github.com/aretw0/dentsim/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// shutdownGrace bounds how long in-flight requests may take on shutdown.
const shutdownGrace = 5 * time.Second

// ServeOptions configures the serve command.
type ServeOptions struct {
	Options
	Port          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
	Out           io.Writer
}

// host is everything the HTTP server owns.
type host struct {
	handler http.Handler
	store   ports.SnapshotStore
	close   func() error
}

// newHost wires the simulator, the session store and the HTTP handler.
// Sessions live in Redis when an address is given and in memory otherwise.
func newHost(ctx context.Context, opts ServeOptions, logger *slog.Logger) (*host, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	sim, err := createSimulator(opts.Options, logger, dentsim.WithLifecycleHooks(metrics.Hooks()))
	if err != nil {
		return nil, err
	}

	h := &host{close: func() error { return nil }}
	var sessionOpts []session.Option

	if opts.RedisAddr != "" {
		store := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, redis.WithTTL(opts.SessionTTL))
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.RedisAddr, err)
		}
		h.store = store
		h.close = store.Close
		sessionOpts = append(sessionOpts, session.WithLocker(redis.NewLocker(store.Client(), "dentsim:")))
	} else {
		h.store = memory.NewStore()
	}

	manager := sim.NewManager(h.store, sessionOpts...)
	h.handler = httpAdapter.NewHandler(manager,
		httpAdapter.WithMetrics(metrics),
		httpAdapter.WithLogger(logger),
	)
	return h, nil
}

// Serve starts the HTTP host and blocks until a signal arrives or the
// listener fails.
func Serve(opts ServeOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.Out

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	h, err := newHost(sigCtx, opts, logger)
	if err != nil {
		return err
	}
	defer h.close()

	srv := &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           h.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		if tui.IsTerminal(out) {
			tui.PrintBanner(out, dentsim.Version)
		}
		backend := "memory"
		if opts.RedisAddr != "" {
			backend = "redis " + opts.RedisAddr
		}
		printSystemMessage(out, "Serving dentsim on %s (sessions: %s)", srv.Addr, backend)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		printSystemMessage(out, "Shutting down (signal: %v)", sigCtx.Signal())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownGrace, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		printSystemMessage(out, "Server stopped gracefully")
		return nil
	}
}
