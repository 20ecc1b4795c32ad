package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTaskOperation(t *testing.T) {
	before := testutil.ToFloat64(TaskOperations.WithLabelValues("toggle", "not_found"))
	ObserveTaskOperation("toggle", "not_found")
	after := testutil.ToFloat64(TaskOperations.WithLabelValues("toggle", "not_found"))
	assert.Equal(t, before+1, after)
}

func TestObserveInvalidRequest(t *testing.T) {
	before := testutil.ToFloat64(TaskOperations.WithLabelValues("create", "invalid"))
	ObserveInvalidRequest("create")
	after := testutil.ToFloat64(TaskOperations.WithLabelValues("create", "invalid"))
	assert.Equal(t, before+1, after)
}
