package store

import "smart-menu/internal/domain"

// Read accessors. Slices are copied so callers can't mutate store
// state behind the mutex.

func (s *Store) CurrentVenue() (domain.Venue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.venue, s.venue != nil
}

func (s *Store) CurrentStall() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stallID
}

func (s *Store) CurrentTable() (domain.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil {
		return domain.Table{}, false
	}
	return *s.table, true
}

func (s *Store) DietaryFilter() domain.DietaryFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Store) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

func (s *Store) Bound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.venue != nil && s.table != nil
}

func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartCount is the badge number: the sum of quantities.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.cart {
		n += it.Quantity
	}
	return n
}

func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.cart {
		total += it.Item.Price * float64(it.Quantity)
	}
	return total
}

func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrderByID(orderID string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) CurrentOrder() (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentOrderID == "" {
		return domain.Order{}, false
	}
	for _, o := range s.orders {
		if o.ID == s.currentOrderID {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) ActiveOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, o := range s.orders {
		if o.Status.Active() {
			n++
		}
	}
	return n
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) UnreadNotifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, nt := range s.notifications {
		if !nt.Read {
			n++
		}
	}
	return n
}

// FilteredMenu is the menu of the bound venue (respecting the current
// stall selection) narrowed by the dietary filter.
func (s *Store) FilteredMenu() []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.venue == nil {
		return nil
	}
	return domain.FilterMenu(domain.Menu(s.venue, s.stallID), s.filter)
}

// SearchMenu searches the filtered menu by name, description or tag.
func (s *Store) SearchMenu(query string) []domain.MenuItem {
	return domain.SearchMenu(s.FilteredMenu(), query)
}
