package kitchen

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/config"
	"smart-menu/internal/domain"
	"smart-menu/internal/store"
)

func fastConfig() config.KitchenConfig {
	return config.KitchenConfig{ConfirmMS: 2, PrepareMS: 2, ReadyMS: 2, DeliverMS: 2, PollMS: 2}
}

func placedOrder(t *testing.T) (*store.Store, domain.Order) {
	t.Helper()
	st := store.New(logger.NewWithWriter("store", io.Discard))
	st.SetCurrentVenue(domain.Restaurant{ID: "rest-1", Name: "Gourmet Delight"})
	st.SetCurrentTable(domain.Table{ID: "table-3", Number: 3})
	require.NoError(t, st.AddToCart(domain.MenuItem{ID: "v2", Name: "Margherita Pizza", Price: 12.99}, 2, ""))
	order, err := st.PlaceOrder()
	require.NoError(t, err)
	return st, order
}

func TestProcessWalksOrderToDelivered(t *testing.T) {
	st, order := placedOrder(t)
	w := NewWorker(logger.NewWithWriter("kitchen", io.Discard), st, fastConfig())

	w.Process(context.Background(), order.ID)

	got, ok := st.OrderByID(order.ID)
	require.True(t, ok)
	require.Equal(t, domain.StatusDelivered, got.Status)
}

func TestProcessLeavesCancelledOrderAlone(t *testing.T) {
	st, order := placedOrder(t)
	require.True(t, st.CancelOrder(order.ID))

	w := NewWorker(logger.NewWithWriter("kitchen", io.Discard), st, fastConfig())
	w.Process(context.Background(), order.ID)

	got, _ := st.OrderByID(order.ID)
	require.Equal(t, domain.StatusCancelled, got.Status)
}

func TestCancelAfterConfirmationIsRefused(t *testing.T) {
	st, order := placedOrder(t)
	cfg := fastConfig()
	cfg.PrepareMS = 50 // give the cancel a window after "confirmed"
	w := NewWorker(logger.NewWithWriter("kitchen", io.Discard), st, cfg)

	done := make(chan struct{})
	go func() { w.Process(context.Background(), order.ID); close(done) }()

	require.Eventually(t, func() bool {
		o, _ := st.OrderByID(order.ID)
		return o.Status == domain.StatusConfirmed
	}, time.Second, time.Millisecond)

	// past pending, so a customer cancel is refused and the kitchen
	// carries on to delivery
	require.False(t, st.CancelOrder(order.ID))
	<-done
	got, _ := st.OrderByID(order.ID)
	require.Equal(t, domain.StatusDelivered, got.Status)
}

func TestRunPicksUpPendingOrders(t *testing.T) {
	st, order := placedOrder(t)
	w := NewWorker(logger.NewWithWriter("kitchen", io.Discard), st, fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.Eventually(t, func() bool {
		o, _ := st.OrderByID(order.ID)
		return o.Status == domain.StatusDelivered
	}, 2*time.Second, 2*time.Millisecond)
}

func TestProcessRespectsContextCancellation(t *testing.T) {
	st, order := placedOrder(t)
	cfg := fastConfig()
	cfg.ConfirmMS = 5000
	w := NewWorker(logger.NewWithWriter("kitchen", io.Discard), st, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() { w.Process(ctx, order.ID); close(done) }()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker ignored context cancellation")
	}
	got, _ := st.OrderByID(order.ID)
	require.Equal(t, domain.StatusPending, got.Status)
}
