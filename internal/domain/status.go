package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Next returns the following status on the happy path. Ready is the
// last kitchen-driven hop; delivery is confirmed by the floor staff.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusConfirmed, true
	case StatusConfirmed:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	default:
		return "", false
	}
}

// CanTransitionTo permits single forward steps plus the one
// cancellation edge, pending -> cancelled.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == StatusCancelled {
		return s.Cancellable()
	}
	n, ok := s.Next()
	return ok && n == next
}

func (s OrderStatus) Cancellable() bool { return s == StatusPending }

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Active reports whether the order still needs attention from the
// customer's point of view.
func (s OrderStatus) Active() bool {
	switch s {
	case StatusCancelled, StatusDelivered, StatusReady:
		return false
	default:
		return true
	}
}

// Progress is the display percentage for the status bar.
func (s OrderStatus) Progress() int {
	switch s {
	case StatusPending:
		return 25
	case StatusConfirmed:
		return 50
	case StatusPreparing:
		return 75
	case StatusReady, StatusDelivered:
		return 100
	default:
		return 0
	}
}
