package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	report *RosterReport
	err    error
	calls  int
}

func (r *stubReporter) Report(context.Context) (*RosterReport, error) {
	r.calls++
	return r.report, r.err
}

func TestCronService_RunReport(t *testing.T) {
	reporter := &stubReporter{report: &RosterReport{Employed: 3, Retired: 1}}
	svc := NewCronService(reporter, "30 8 * * *")

	report := svc.RunReport()
	require.NotNil(t, report)
	assert.EqualValues(t, 3, report.Employed)
	assert.EqualValues(t, 1, report.Retired)
	assert.Equal(t, 1, reporter.calls)
}

func TestCronService_RunReportFailure(t *testing.T) {
	svc := NewCronService(&stubReporter{err: errors.New("db down")}, "30 8 * * *")
	assert.Nil(t, svc.RunReport())
}

func TestCronService_StartStop(t *testing.T) {
	svc := NewCronService(&stubReporter{}, "30 8 * * *")
	require.NoError(t, svc.Start())
	svc.Stop()
}

func TestCronService_InvalidSchedule(t *testing.T) {
	svc := NewCronService(&stubReporter{}, "every tuesday")
	assert.Error(t, svc.Start())
}
