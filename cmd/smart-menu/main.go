package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/config"
	"smart-menu/internal/domain"
	"smart-menu/internal/kitchen"
	"smart-menu/internal/menudata"
	"smart-menu/internal/session"
	"smart-menu/internal/store"
	"smart-menu/internal/waiter"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (defaults apply when empty)")
	payload := flag.String("payload", "rest-1:table-3-qr", "QR payload the simulated camera decodes")
	items := flag.String("items", "v2:2,d1:1", "comma-separated <menuItemId>:<qty> to order")
	message := flag.String("message", "Extra napkins, please", "waiter-call message to send")
	flag.Parse()

	lg := logger.New("smart-menu")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			lg.Error("config_load_failed", err, map[string]any{"path": *configPath})
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	provider := menudata.NewProvider(cfg.Provider)
	st := store.New(logger.New("store"))

	camera := simCamera{}
	decoder := &simDecoder{payload: *payload, emptyFrames: 3}
	resolver := session.NewResolver(logger.New("session"), camera, decoder, provider, st, cfg.Scanner.FPS)

	lg.Info("service_started", map[string]any{"payload": *payload})
	if err := resolver.Start(ctx); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	defer resolver.Stop()

	if err := waitBound(ctx, st, resolver); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}

	table, _ := st.CurrentTable()
	venue, _ := st.CurrentVenue()
	lg.Info("session_ready", map[string]any{"venue": venue.VenueName(), "table": table.Number})

	if err := fillCart(st, *items); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("cart_filled", map[string]any{"count": st.CartCount(), "total": st.CartTotal()})

	order, err := st.PlaceOrder()
	if err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}

	worker := kitchen.NewWorker(logger.New("kitchen"), st, cfg.Kitchen)
	go worker.Run(ctx)

	call := waiter.Start(ctx, logger.New("waiter"), cfg.Waiter, table.Number, func(msg string) {
		lg.Info("staff_notified", map[string]any{"message": msg})
	})
	defer call.Cancel()
	if err := call.Send(*message); err != nil {
		lg.Error("waiter_message_failed", err, nil)
	}

	watchOrder(ctx, lg, st, order.ID)
	lg.Info("session_complete", map[string]any{
		"order_id": order.ID, "total_amount": order.TotalAmount,
		"unread_notifications": st.UnreadNotifications(),
	})
}

func waitBound(ctx context.Context, st *store.Store, r *session.Resolver) error {
	deadline := time.After(15 * time.Second)
	for !st.Bound() {
		switch r.State() {
		case session.StateCancelled, session.StatePermissionDenied:
			return fmt.Errorf("scan ended without a session: %s", r.Err())
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("timed out waiting for QR bind")
		case <-time.After(50 * time.Millisecond):
		}
	}
	return nil
}

func fillCart(st *store.Store, spec string) error {
	menu := st.FilteredMenu()
	byID := make(map[string]domain.MenuItem, len(menu))
	for _, it := range menu {
		byID[it.ID] = it
	}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, qtyStr, ok := strings.Cut(part, ":")
		qty := 1
		if ok {
			n, err := strconv.Atoi(qtyStr)
			if err != nil {
				return fmt.Errorf("bad item spec %q: %w", part, err)
			}
			qty = n
		}
		item, found := byID[id]
		if !found {
			return fmt.Errorf("menu item %q not on the current menu", id)
		}
		if err := st.AddToCart(item, qty, ""); err != nil {
			return err
		}
	}
	return nil
}

func watchOrder(ctx context.Context, lg *logger.Logger, st *store.Store, orderID string) {
	last := domain.OrderStatus("")
	for {
		order, ok := st.OrderByID(orderID)
		if !ok {
			return
		}
		if order.Status != last {
			last = order.Status
			lg.Info("order_status", map[string]any{
				"order_id": orderID,
				"status":   string(order.Status),
				"progress": order.Status.Progress(),
			})
		}
		if order.Status.Terminal() {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// simCamera and simDecoder replace the real capture stack so the demo
// can run headless; the decoder yields a few empty frames before the
// payload, like a camera settling on the code.

type simCamera struct{}

func (simCamera) RequestAccess(context.Context) (session.Permission, error) {
	return session.PermissionGranted, nil
}

func (simCamera) Capture() (session.Frame, bool) { return session.Frame("frame"), true }

type simDecoder struct {
	payload     string
	emptyFrames int
	seen        int
}

func (d *simDecoder) Decode(session.Frame) (string, bool) {
	d.seen++
	if d.seen <= d.emptyFrames {
		return "", false
	}
	return d.payload, true
}
