package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"smart-menu/internal/domain"
)

func TestParsePayloadValid(t *testing.T) {
	restaurantID, token, err := ParsePayload("rest-1:table-3-qr")
	require.NoError(t, err)
	require.Equal(t, "rest-1", restaurantID)
	require.Equal(t, "table-3-qr", token)
}

func TestParsePayloadRejectsMalformed(t *testing.T) {
	for _, payload := range []string{
		"",
		"rest-1",
		"rest-1:",
		":table-3-qr",
		":",
		"rest-1:table-3-qr:extra",
	} {
		_, _, err := ParsePayload(payload)
		var fe *domain.FormatError
		require.ErrorAs(t, err, &fe, "payload %q", payload)
		require.Equal(t, payload, fe.Payload)
	}
}
