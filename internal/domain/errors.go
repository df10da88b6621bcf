package domain

import "fmt"

// FormatError means a scanned payload did not match the expected
// "<restaurantId>:<tableQrToken>" shape.
type FormatError struct {
	Payload string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid QR payload %q", e.Payload)
}

// NotFoundError reports which entity a lookup missed.
type NotFoundError struct {
	Entity string // "restaurant" | "table"
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// PermissionError means camera access was refused by the platform.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return "camera permission denied: " + e.Reason
}

// PreconditionError rejects an operation whose requirements are not
// met, e.g. placing an order with an empty cart.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}
