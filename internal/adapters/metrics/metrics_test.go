package metrics

import (
	"errors"
	"testing"

	"dmaker/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Observe(t *testing.T) {
	r := New()

	r.Observe("create", nil)
	r.Observe("create", nil)
	r.Observe("create", domain.ErrDuplicatedMemberID)
	r.Observe("get_detail", errors.New("db down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operations.WithLabelValues("create", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("create", "DUPLICATED_MEMBER_ID")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operations.WithLabelValues("get_detail", "INTERNAL_SERVER_ERROR")))
}
