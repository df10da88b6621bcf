package waiter

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/config"
	"smart-menu/internal/domain"
)

func testLogger() *logger.Logger { return logger.NewWithWriter("waiter", io.Discard) }

func TestCallCountsElapsedTicks(t *testing.T) {
	cfg := config.WaiterConfig{TickMS: 5, CeilingTicks: 1000}
	c := Start(context.Background(), testLogger(), cfg, 3, nil)
	defer c.Cancel()

	require.Eventually(t, func() bool { return c.Elapsed() >= 2 }, time.Second, time.Millisecond)
	require.True(t, c.Active())
}

func TestCallAutoCancelsAtCeiling(t *testing.T) {
	cfg := config.WaiterConfig{TickMS: 2, CeilingTicks: 5}
	c := Start(context.Background(), testLogger(), cfg, 3, nil)

	require.Eventually(t, func() bool { return !c.Active() }, time.Second, time.Millisecond)
	require.Equal(t, 5, c.Elapsed())
}

func TestCancelIsIdempotentAndStopsTicks(t *testing.T) {
	cfg := config.WaiterConfig{TickMS: 2, CeilingTicks: 1000}
	c := Start(context.Background(), testLogger(), cfg, 3, nil)

	c.Cancel()
	c.Cancel()
	require.False(t, c.Active())

	frozen := c.Elapsed()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, frozen, c.Elapsed())
}

func TestContextCancellationEndsCall(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := config.WaiterConfig{TickMS: 2, CeilingTicks: 1000}
	c := Start(ctx, testLogger(), cfg, 3, nil)

	cancel()
	require.Eventually(t, func() bool { return !c.Active() }, time.Second, time.Millisecond)
}

func TestSendForwardsMessageToStaff(t *testing.T) {
	var mu sync.Mutex
	var got []string
	notify := func(msg string) {
		mu.Lock()
		got = append(got, msg)
		mu.Unlock()
	}

	cfg := config.WaiterConfig{TickMS: 1000, CeilingTicks: 300}
	c := Start(context.Background(), testLogger(), cfg, 7, notify)
	defer c.Cancel()

	require.NoError(t, c.Send("Extra napkins, please"))
	mu.Lock()
	require.Equal(t, []string{"Table #7: Extra napkins, please"}, got)
	mu.Unlock()

	err := c.Send("   ")
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
}

func TestFormatElapsed(t *testing.T) {
	require.Equal(t, "0:00", FormatElapsed(0))
	require.Equal(t, "0:09", FormatElapsed(9))
	require.Equal(t, "1:05", FormatElapsed(65))
	require.Equal(t, "5:00", FormatElapsed(300))
}
