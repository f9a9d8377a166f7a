package utils

import (
	"strconv"
	"time"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a decorator that counts every operation by its path and
// outcome and measures how long it took.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ treasury.Decorator = (*Metrics)(nil)

// NewMetrics creates a Metrics decorator with all collectors registered
// in given registry.
func NewMetrics(r prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treasury",
			Name:      "operations_total",
			Help:      "Number of executed operations.",
		}, []string{"path", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "treasury",
			Name:      "operation_duration_seconds",
			Help:      "Time spent executing an operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"path"}),
	}
	if err := r.Register(m.operations); err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "register operations counter: %s", err)
	}
	if err := r.Register(m.duration); err != nil {
		return nil, errors.Wrapf(errors.ErrHuman, "register duration histogram: %s", err)
	}
	return m, nil
}

// Deliver counts the operation. Successful operations are counted with
// code 0, failures with the code of the root error.
func (m *Metrics) Deliver(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx, next treasury.Handler) (*treasury.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)

	path := treasury.GetPath(tx)
	var code uint32
	if err != nil {
		code = errors.Code(err)
	}
	m.operations.WithLabelValues(path, strconv.FormatUint(uint64(code), 10)).Inc()
	m.duration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	return res, err
}
