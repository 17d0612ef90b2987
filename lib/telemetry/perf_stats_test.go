package telemetry

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInstrumentPerfStatsStopsOnCancel(t *testing.T) {
	before := runtime.NumGoroutine()

	ctx, cancel := context.WithCancel(context.Background())
	InstrumentPerfStats(ctx)
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() > before
	}, time.Second, time.Millisecond*10)

	cancel()
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, time.Millisecond*10)
}
