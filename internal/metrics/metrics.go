// Package metrics exposes selection activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"rowpick/internal/eventbus"
)

const namespace = "rowpick"

// Recorder turns domain events into metric updates
type Recorder struct {
	registry *prometheus.Registry

	commands   *prometheus.CounterVec
	selected   prometheus.Gauge
	reference  prometheus.Gauge
	complement prometheus.Gauge
	rowsLoaded prometheus.Gauge
	clears     prometheus.Counter

	unsubscribe []func()
}

// NewRecorder creates a recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "commands_total",
			Help:      "Selection commands executed, by command.",
		}, []string{"command"}),
		selected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "selected",
			Help:      "Number of selected ids.",
		}),
		reference: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "reference",
			Help:      "Number of distinct ids in the reference set.",
		}),
		complement: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "complement",
			Help:      "Number of reference ids that are not selected.",
		}),
		rowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "datasource",
			Name:      "rows_loaded",
			Help:      "Rows produced by the current load.",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "clears_total",
			Help:      "Number of times the selection was cleared.",
		}),
	}
	r.registry.MustRegister(r.commands, r.selected, r.reference, r.complement, r.rowsLoaded, r.clears)
	return r
}

// Registry returns the registry the recorder's metrics live in
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Attach subscribes the recorder to bus
func (r *Recorder) Attach(bus eventbus.EventBus) {
	r.unsubscribe = append(r.unsubscribe,
		bus.Subscribe(eventbus.EventSelectionChanged, r.handle),
		bus.Subscribe(eventbus.EventSelectionCleared, r.handle),
		bus.Subscribe(eventbus.EventReferenceChanged, r.handle),
		bus.Subscribe(eventbus.EventRowsLoadedBatch, r.handle),
	)
}

// Detach removes every subscription made by Attach
func (r *Recorder) Detach() {
	for _, unsubscribe := range r.unsubscribe {
		unsubscribe()
	}
	r.unsubscribe = nil
}

func (r *Recorder) handle(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.SelectionChangedEvent:
		r.commands.WithLabelValues(ev.Command).Inc()
		r.selected.Set(float64(ev.Total))
		r.reference.Set(float64(ev.Reference))
		r.complement.Set(float64(ev.Complement))
	case eventbus.SelectionClearedEvent:
		r.clears.Inc()
		r.selected.Set(0)
		r.complement.Set(float64(ev.Reference))
	case eventbus.ReferenceChangedEvent:
		r.reference.Set(float64(ev.Size))
		r.complement.Set(float64(ev.Complement))
	case eventbus.RowsLoadedBatchEvent:
		r.rowsLoaded.Set(float64(ev.Loaded))
	}
}

// Handler serves the recorder's registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve runs an HTTP server exposing /metrics on addr until ctx is done
func (r *Recorder) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown: %w", err)
		}
		return nil
	}
}
