package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"smart-menu/internal/common/logger"
	"smart-menu/internal/domain"
)

// Store is the single source of truth for one customer session:
// bound venue and table, cart, orders, notifications and the dietary
// filter. Every mutation goes through a named method and is atomic
// under the mutex; views read through the accessors only.
type Store struct {
	mu  sync.Mutex
	log *logger.Logger

	now   func() time.Time
	newID func() string

	venue    domain.Venue
	stallID  string
	table    *domain.Table
	filter   domain.DietaryFilter
	scanning bool

	cart           []domain.CartItem
	orders         []domain.Order
	currentOrderID string
	notifications  []domain.Notification
}

func New(log *logger.Logger) *Store {
	return &Store{
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
		filter: domain.FilterAll,
	}
}

// --- session -------------------------------------------------------

func (s *Store) SetCurrentVenue(v domain.Venue) {
	if v == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venue = v
	s.stallID = ""
	s.log.Info("venue_bound", map[string]any{"venue_id": v.VenueID(), "venue": v.VenueName()})
}

// SetCurrentStall selects a stall inside a bound food court. It is a
// no-op for a plain restaurant.
func (s *Store) SetCurrentStall(stallID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venue.(domain.FoodCourt); !ok {
		return
	}
	s.stallID = stallID
}

func (s *Store) SetCurrentTable(t domain.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = &t
	s.log.Info("table_bound", map[string]any{"table_id": t.ID, "number": t.Number})
}

func (s *Store) SetDietaryFilter(f domain.DietaryFilter) {
	if !f.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *Store) SetScanning(flag bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = flag
}

// ClearSession drops the bound venue and table, e.g. on logout or a
// table change. Orders and notifications are kept for display.
func (s *Store) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venue = nil
	s.stallID = ""
	s.table = nil
	s.filter = domain.FilterAll
	s.cart = nil
}

// --- cart ----------------------------------------------------------

// AddToCart upserts by menu item id: re-adding an item replaces its
// quantity and instructions instead of duplicating the entry.
func (s *Store) AddToCart(item domain.MenuItem, quantity int, instructions string) error {
	if quantity < 1 {
		return &domain.PreconditionError{Reason: fmt.Sprintf("quantity must be >= 1, got %d", quantity)}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Item.ID == item.ID {
			s.cart[i].Quantity = quantity
			s.cart[i].Instructions = instructions
			return nil
		}
	}
	s.cart = append(s.cart, domain.CartItem{Item: item, Quantity: quantity, Instructions: instructions})
	return nil
}

func (s *Store) RemoveFromCart(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Item.ID == itemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// UpdateCartItem changes quantity/instructions of an existing entry.
// Quantity <= 0 removes the entry; an unknown id is a no-op.
func (s *Store) UpdateCartItem(itemID string, quantity int, instructions string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
		s.cart[i].Quantity = quantity
		s.cart[i].Instructions = instructions
		return
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// --- orders --------------------------------------------------------

// PlaceOrder snapshots the cart into a new pending order, makes it
// the current order and empties the cart. It requires a bound session
// and a non-empty cart.
func (s *Store) PlaceOrder() (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.venue == nil || s.table == nil {
		return domain.Order{}, &domain.PreconditionError{Reason: "no bound restaurant/table session"}
	}
	if len(s.cart) == 0 {
		return domain.Order{}, &domain.PreconditionError{Reason: "cart is empty"}
	}

	now := s.now()
	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)

	total := 0.0
	maxPrep := 0
	for _, it := range items {
		total += it.Item.Price * float64(it.Quantity)
		if it.Item.PrepTime > maxPrep {
			maxPrep = it.Item.PrepTime
		}
	}

	order := domain.Order{
		ID:                s.newID(),
		TableID:           s.table.ID,
		Items:             items,
		Status:            domain.StatusPending,
		TotalAmount:       total,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: now.Add(time.Duration(maxPrep) * time.Minute),
	}
	s.orders = append(s.orders, order)
	s.currentOrderID = order.ID
	s.cart = nil

	s.notify(domain.NotifySuccess, fmt.Sprintf("Order placed for table #%d", s.table.Number))
	s.log.Info("order_placed", map[string]any{
		"order_id": order.ID, "table_id": order.TableID,
		"items": len(order.Items), "total_amount": order.TotalAmount,
	})
	return order, nil
}

// UpdateOrder replaces an order's items and recomputes its total.
// Returns false if the order id is unknown.
func (s *Store) UpdateOrder(orderID string, items []domain.CartItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		snapshot := make([]domain.CartItem, len(items))
		copy(snapshot, items)
		total := 0.0
		for _, it := range snapshot {
			total += it.Item.Price * float64(it.Quantity)
		}
		s.orders[i].Items = snapshot
		s.orders[i].TotalAmount = total
		s.orders[i].UpdatedAt = s.now()
		return true
	}
	return false
}

// CancelOrder cancels a pending order. Orders past pending are left
// untouched; the current-order pointer keeps showing the cancelled
// order so the UI can render its banner.
func (s *Store) CancelOrder(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.Cancellable() {
			return false
		}
		s.orders[i].Status = domain.StatusCancelled
		s.orders[i].UpdatedAt = s.now()
		s.notify(domain.NotifyWarning, "Your order has been cancelled")
		s.log.Info("order_cancelled", map[string]any{"order_id": orderID})
		return true
	}
	return false
}

// SetOrderStatus moves an order one step forward on the status
// machine. Invalid transitions (including anything after a cancel)
// are refused.
func (s *Store) SetOrderStatus(orderID string, next domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.CanTransitionTo(next) {
			return false
		}
		old := s.orders[i].Status
		s.orders[i].Status = next
		s.orders[i].UpdatedAt = s.now()
		s.notify(domain.NotifyInfo, fmt.Sprintf("Order status: %s", next))
		s.log.Debug("order_status_changed", map[string]any{
			"order_id": orderID, "old_status": string(old), "new_status": string(next),
		})
		return true
	}
	return false
}

// --- notifications -------------------------------------------------

func (s *Store) MarkNotificationAsRead(notificationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			s.notifications[i].Read = true
			return
		}
	}
}

// notify appends a notification; callers must hold the mutex.
func (s *Store) notify(kind domain.NotificationKind, message string) {
	s.notifications = append(s.notifications, domain.Notification{
		ID:        s.newID(),
		Message:   message,
		Kind:      kind,
		Read:      false,
		CreatedAt: s.now(),
	})
}
