// Package metrics exports store activity as Prometheus metrics.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/go-drift/driftstore/pkg/store"
)

// Observer records dispatches, reducer faults and renames. Register it on
// a store with store.WithObserver.
type Observer struct {
	DispatchTotal    *prometheus.CounterVec
	FaultsTotal      *prometheus.CounterVec
	DispatchDuration *prometheus.HistogramVec
	RenamesTotal     *prometheus.CounterVec
}

// NewObserver creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Observer{
		DispatchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "driftstore_dispatch_total",
			Help: "Total number of actions reduced, by store and action type",
		}, []string{"store", "action"}),
		FaultsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "driftstore_reducer_faults_total",
			Help: "Total number of reducer panics, by store and action type",
		}, []string{"store", "action"}),
		DispatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "driftstore_dispatch_duration_seconds",
			Help:    "Time spent in the reducer",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}, []string{"store"}),
		RenamesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "driftstore_renames_total",
			Help: "Total number of store renames, by new name",
		}, []string{"store"}),
	}
}

func (o *Observer) OnDispatchStart(ctx context.Context, _, _ string) context.Context {
	return ctx
}

func (o *Observer) OnDispatchComplete(_ context.Context, name, actionType string, duration time.Duration, err error) {
	name, actionType = labelOrUnknown(name), labelOrUnknown(actionType)
	if err != nil {
		o.FaultsTotal.WithLabelValues(name, actionType).Inc()
		return
	}
	o.DispatchTotal.WithLabelValues(name, actionType).Inc()
	o.DispatchDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (o *Observer) OnRename(_ context.Context, _, newName string) {
	o.RenamesTotal.WithLabelValues(labelOrUnknown(newName)).Inc()
}

func labelOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

var _ store.Observer = (*Observer)(nil)
