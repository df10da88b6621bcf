package session

import (
	"strings"

	"smart-menu/internal/domain"
)

// ParsePayload splits a decoded QR payload of the form
// "<restaurantId>:<tableQrToken>". Exactly one colon and two
// non-empty halves are required.
func ParsePayload(payload string) (restaurantID, tableToken string, err error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", &domain.FormatError{Payload: payload}
	}
	return parts[0], parts[1], nil
}
