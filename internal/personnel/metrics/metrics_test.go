package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	dErrors "personnel/pkg/domain-errors"
)

func TestCountersByLabel(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementCreated("assignment")
	m.IncrementCreated("assignment")
	m.IncrementCreated("person")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues("assignment")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues("person")))

	m.IncrementDomainError(dErrors.NotFound("unit", 9))
	m.IncrementDomainError(errors.New("driver exploded"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DomainErrors.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DomainErrors.WithLabelValues("unknown_error")))
}

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg)

	m.ObserveOperation("create_assignment", time.Now())
	assert.Equal(t, 1, testutil.CollectAndCount(m.OperationDuration, "personnel_operation_duration_seconds"))
}
