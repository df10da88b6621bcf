package kitchen

import (
	"context"
	"time"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/config"
	"smart-menu/internal/domain"
)

// Orders is the slice of the store the worker drives.
type Orders interface {
	Orders() []domain.Order
	SetOrderStatus(orderID string, next domain.OrderStatus) bool
}

// Worker advances placed orders along the status machine on timers,
// standing in for the restaurant-side kitchen. Each hop goes through
// the store's guarded transition, so a cancelled order is never
// advanced: the guard refuses and the worker drops it.
type Worker struct {
	log    *logger.Logger
	orders Orders

	confirm time.Duration
	prepare time.Duration
	ready   time.Duration
	deliver time.Duration
	poll    time.Duration
}

func NewWorker(log *logger.Logger, orders Orders, cfg config.KitchenConfig) *Worker {
	return &Worker{
		log:     log,
		orders:  orders,
		confirm: time.Duration(cfg.ConfirmMS) * time.Millisecond,
		prepare: time.Duration(cfg.PrepareMS) * time.Millisecond,
		ready:   time.Duration(cfg.ReadyMS) * time.Millisecond,
		deliver: time.Duration(cfg.DeliverMS) * time.Millisecond,
		poll:    time.Duration(cfg.PollMS) * time.Millisecond,
	}
}

// Run polls for newly placed orders and processes each in its own
// goroutine until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w.poll <= 0 {
		w.poll = 250 * time.Millisecond
	}
	seen := make(map[string]bool)
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, o := range w.orders.Orders() {
				if seen[o.ID] || o.Status != domain.StatusPending {
					continue
				}
				seen[o.ID] = true
				go w.Process(ctx, o.ID)
			}
		}
	}
}

// Process walks one order through confirmed, preparing, ready and
// delivered, pausing the configured delay before each hop.
func (w *Worker) Process(ctx context.Context, orderID string) {
	stages := []struct {
		delay time.Duration
		next  domain.OrderStatus
	}{
		{w.confirm, domain.StatusConfirmed},
		{w.prepare, domain.StatusPreparing},
		{w.ready, domain.StatusReady},
		{w.deliver, domain.StatusDelivered},
	}

	w.log.Debug("order_processing_started", map[string]any{"order_id": orderID})
	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return
		case <-time.After(stage.delay):
		}
		if !w.orders.SetOrderStatus(orderID, stage.next) {
			// cancelled or already moved; this order is no longer ours
			w.log.Debug("order_advance_refused", map[string]any{
				"order_id": orderID, "attempted": string(stage.next),
			})
			return
		}
	}
	w.log.Info("order_completed", map[string]any{"order_id": orderID})
}
