package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"nik-parser/internal/metrics"
)

// ErrNotReady is returned while the first load has not finished.
var ErrNotReady = errors.New("reference data not loaded yet")

// Status describes the most recent completed load.
type Status struct {
	Ready      bool      `json:"ready"`
	Generation uint64    `json:"generation"`
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
	Counts     Counts    `json:"counts"`
	LastError  string    `json:"last_error,omitempty"`
}

// Loader fills a Store from a Source in the background and publishes it
// atomically. Each load builds a new Store; readers keep the snapshot they
// obtained.
type Loader struct {
	source Source
	logger *slog.Logger

	store  atomic.Pointer[Store]
	status atomic.Pointer[Status]

	ready     chan struct{}
	readyOnce sync.Once

	// serializes loads
	loadMu sync.Mutex

	// guards listeners and publishing a new snapshot
	listenersMu sync.Mutex
	listeners   []func(Status)
}

func NewLoader(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{
		source: source,
		logger: logger,
		ready:  make(chan struct{}),
	}
	l.status.Store(&Status{Source: source.Name()})
	return l
}

// Start runs the first load in a new goroutine.
func (l *Loader) Start(ctx context.Context) {
	go func() {
		if _, err := l.Reload(ctx); err != nil {
			l.logger.Warn("reference load incomplete", "source", l.source.Name(), "error", err)
		}
	}()
}

// Reload reads all tables and swaps in the new Store. A table that fails to
// load is stored empty; the joined error is returned and recorded in Status,
// but the loader still becomes ready.
func (l *Loader) Reload(ctx context.Context) (Status, error) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	started := time.Now()
	var (
		raw  RawTables
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range Kinds {
		kind := kind
		g.Go(func() error {
			table, err := l.source.Table(gctx, kind)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", kind, err))
				table = nil
			}
			raw.set(kind, table)
			return nil
		})
	}
	_ = g.Wait()

	store := NewStore(raw)
	loadErr := errors.Join(errs...)

	status := Status{
		Ready:      true,
		Generation: l.Status().Generation + 1,
		Source:     l.source.Name(),
		LoadedAt:   time.Now(),
		Counts:     store.Counts(),
	}
	if loadErr != nil {
		status.LastError = loadErr.Error()
	}

	l.listenersMu.Lock()
	l.store.Store(store)
	l.status.Store(&status)
	l.readyOnce.Do(func() { close(l.ready) })
	for _, fn := range l.listeners {
		fn(status)
	}
	l.listenersMu.Unlock()

	metrics.ObserveReferenceLoad(status.Source, loadErr == nil, status.Counts.Provinces, status.Counts.Regencies, status.Counts.Districts)
	l.logger.Info("reference data loaded",
		"source", status.Source,
		"provinces", status.Counts.Provinces,
		"regencies", status.Counts.Regencies,
		"districts", status.Counts.Districts,
		"duration", time.Since(started),
	)

	return status, loadErr
}

// Ready is closed once the first load has completed.
func (l *Loader) Ready() <-chan struct{} {
	return l.ready
}

// Store returns the current snapshot or ErrNotReady.
func (l *Loader) Store() (*Store, error) {
	s := l.store.Load()
	if s == nil {
		return nil, ErrNotReady
	}
	return s, nil
}

// Wait blocks until the first load completes or ctx is done.
func (l *Loader) Wait(ctx context.Context) (*Store, error) {
	select {
	case <-l.ready:
		return l.Store()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Loader) Status() Status {
	return *l.status.Load()
}

// OnReady registers fn to be called after every completed load. If data is
// already loaded fn is called immediately with the current status. Each load
// reaches fn exactly once. fn must not call OnReady.
func (l *Loader) OnReady(fn func(Status)) {
	l.listenersMu.Lock()
	defer l.listenersMu.Unlock()

	l.listeners = append(l.listeners, fn)
	if st := l.Status(); st.Ready {
		fn(st)
	}
}
