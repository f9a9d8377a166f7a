package utils

import (
	"context"
	"testing"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store"
	"github.com/iov-one/treasury/treasurytest"
	"github.com/iov-one/treasury/treasurytest/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	assert.Nil(t, err)

	ctx := context.Background()
	db := store.MemStore()
	tx := treasury.NewTx(&treasurytest.Msg{RoutePath: "schedule/advance"})

	_, err = m.Deliver(ctx, db, tx, &treasurytest.Handler{})
	assert.Nil(t, err)
	_, err = m.Deliver(ctx, db, tx, &treasurytest.Handler{})
	assert.Nil(t, err)
	_, err = m.Deliver(ctx, db, tx, &treasurytest.Handler{DeliverErr: errors.Wrap(errors.ErrUnauthorized, "test")})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("schedule/advance", "0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("schedule/advance", "2")))
}

func TestMetricsDoubleRegistration(t *testing.T) {
	r := prometheus.NewRegistry()
	_, err := NewMetrics(r)
	assert.Nil(t, err)
	_, err = NewMetrics(r)
	assert.IsErr(t, errors.ErrHuman, err)
}
