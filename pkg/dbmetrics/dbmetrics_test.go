package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/gasparllamazares/LRM-ReservationService/pkg/metrics"
)

func TestRecordPoolStats(t *testing.T) {
	m := metrics.New("test-service")
	d := Wrap(nil, m)

	last := d.recordPoolStats("testdb", sql.DBStats{
		OpenConnections: 4,
		Idle:            1,
		InUse:           3,
		WaitCount:       5,
	}, 0)

	assert.Equal(t, int64(5), last)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBConnectionsOpen.WithLabelValues("testdb")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBConnectionsIdle.WithLabelValues("testdb")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DBConnectionsInUse.WithLabelValues("testdb")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.DBWaitCount.WithLabelValues("testdb")))

	// Повторный срез публикует только прирост ожиданий
	last = d.recordPoolStats("testdb", sql.DBStats{
		OpenConnections: 2,
		Idle:            2,
		InUse:           0,
		WaitCount:       7,
	}, last)

	assert.Equal(t, int64(7), last)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DBConnectionsOpen.WithLabelValues("testdb")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBWaitCount.WithLabelValues("testdb")))

	// Без новых ожиданий счетчик не двигается
	last = d.recordPoolStats("testdb", sql.DBStats{WaitCount: 7}, last)
	assert.Equal(t, int64(7), last)
	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBWaitCount.WithLabelValues("testdb")))
}

func TestExecutorContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))

	fallback := &DB{}
	assert.Same(t, fallback, GetExecutor(ctx, fallback))

	exec := &DB{}
	txCtx := WithExecutor(ctx, exec)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, exec, GetExecutor(txCtx, fallback))
}
