package get_table_reservations

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-BookingService/pkg/types"
)

func TestParseRequest(t *testing.T) {
	t.Run("without period", func(t *testing.T) {
		req, err := parseRequest(3, url.Values{})

		require.NoError(t, err)
		assert.Equal(t, int64(3), req.TableID)
		assert.Nil(t, req.FromSlot)
		assert.Nil(t, req.ToSlot)
	})

	t.Run("with period", func(t *testing.T) {
		query := url.Values{}
		query.Set("from", "2022-11-12T18:00")
		query.Set("to", "2022-11-12T22:00")

		req, err := parseRequest(3, query)

		require.NoError(t, err)
		require.NotNil(t, req.FromSlot)
		require.NotNil(t, req.ToSlot)
		assert.Equal(t, "2022-11-12T18:00", req.FromSlot.String())
		assert.Equal(t, "2022-11-12T22:00", req.ToSlot.String())
	})

	t.Run("invalid from", func(t *testing.T) {
		query := url.Values{}
		query.Set("from", "12.11.2022")

		_, err := parseRequest(3, query)

		require.ErrorIs(t, err, types.ErrInvalidSlotFormat)
	})
}
